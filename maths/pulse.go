package maths

// Segment 矩形波的一段电平
type Segment struct {
	Duration float64 // 持续时间
	Level    float64 // 电平
}

// PulseTrain 用角点构造周期矩形波
// 从 rest 电平的 t=0 开始，电平变化处插入同一时刻的两个点形成竖直边沿，
// 持续时间不大于0的段被跳过。
func PulseTrain(rest float64, cycles int, segs ...Segment) (t, v []float64) {
	t, v = []float64{0}, []float64{rest}
	now, level := 0.0, rest
	for i := 0; i < cycles; i++ {
		for _, seg := range segs {
			if seg.Duration <= 0 {
				continue
			}
			if seg.Level != level {
				t, v = append(t, now), append(v, seg.Level)
				level = seg.Level
			}
			now += seg.Duration
			t, v = append(t, now), append(v, level)
		}
	}
	// 没有任何有效段时保证至少两个点
	if len(t) < 2 {
		t, v = append(t, 0), append(v, rest)
	}
	return t, v
}
