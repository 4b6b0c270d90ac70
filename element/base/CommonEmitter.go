package base

import (
	"fmt"

	"circuitsheet/element"
	"circuitsheet/maths"
	"circuitsheet/types"
	"circuitsheet/utils"
)

// 共射放大器常量
const (
	ThermalVoltage = 0.026 // 热电压 VT，re = VT/IE
	VCESaturation  = 0.2   // 低于此 VCE 视为饱和
	ICCutoff       = 0.001 // 低于此 IC 视为截止
)

// Region 工作区
type Region int

// 工作区常量定义
const (
	RegionActive     Region = iota // 放大区
	RegionSaturation               // 饱和区
	RegionCutoff                   // 截止区
)

// String 返回工作区名称
func (r Region) String() string {
	switch r {
	case RegionSaturation:
		return "saturation"
	case RegionCutoff:
		return "cutoff"
	}
	return "active region"
}

// Classify 根据 VCE 与 IC 判断工作区，饱和优先
func Classify(vce, ic float64) Region {
	switch {
	case vce < VCESaturation:
		return RegionSaturation
	case ic < ICCutoff:
		return RegionCutoff
	}
	return RegionActive
}

// CommonEmitterType 定义模型
var CommonEmitterType element.ModelType = element.AddElement(10, &CommonEmitter{
	&element.Config{
		ID:       "common_emitter",
		Name:     "Common Emitter Amplifier",
		Category: element.CategoryAmplifiers,
		Params: []types.Parameter{
			element.PositiveVoltage("VCC", "VCC", 12),
			element.Resistance("RC", "RC - Collector", 2200),
			element.Resistance("RE", "RE - Emitter", 1000),
			element.Resistance("R1", "R1 - Upper Base", 47000),
			element.Resistance("R2", "R2 - Lower Base", 10000),
			element.SetParam("beta", "β (hFE)", "", 100, "> 0", maths.Positive[float64]),
			element.SetParam("VBE", "VBE", "V", 0.7, ">= 0", maths.NonNegative[float64]),
		},
	},
})

// CommonEmitter 分压偏置共射放大器
// 直流偏置与小信号增益均为一阶近似：IC ≈ IE，忽略基极分压器负载
type CommonEmitter struct{ *element.Config }

type biasPoint struct {
	vb, ve, vc, vce float64
	ib, ic, ie      float64
	re, av, zi      float64
	icSat           float64
}

func commonEmitterBias(in types.Inputs) biasPoint {
	vcc, rc, re, r1, r2 := in["VCC"], in["RC"], in["RE"], in["R1"], in["R2"]
	var b biasPoint
	b.vb = vcc * r2 / (r1 + r2)
	b.ve = b.vb - in["VBE"]
	b.ie = b.ve / re
	b.ic = b.ie
	b.ib = b.ic / in["beta"]
	b.vc = vcc - b.ic*rc
	b.vce = b.vc - b.ve
	b.re = ThermalVoltage / b.ie
	b.av = -rc / b.re
	b.zi = r1 * r2 / (r1 + r2)
	b.icSat = vcc / (rc + re)
	return b
}

// Check 基极电压必须高于 VBE，否则晶体管截止，IE 不为正，re 无定义
func (CommonEmitter) Check(in types.Inputs) error {
	vb := in["VCC"] * in["R2"] / (in["R1"] + in["R2"])
	if ve := vb - in["VBE"]; ve <= 0 {
		return types.NewDomainError("", "transistor is in cutoff: VB - VBE must be > 0", ve)
	}
	return nil
}

// Evaluate 计算直流工作点与小信号参数
func (CommonEmitter) Evaluate(in types.Inputs) (types.Outputs, error) {
	b := commonEmitterBias(in)
	region := Classify(b.vce, b.ic)
	return types.Outputs{
		element.SetOutput("VB", "Base Voltage VB", b.vb, "V", utils.FormatFixed(b.vb, 3, "V")),
		element.SetOutput("VE", "Emitter Voltage VE", b.ve, "V", utils.FormatFixed(b.ve, 3, "V")),
		element.SetOutput("VC", "Collector Voltage VC", b.vc, "V", utils.FormatFixed(b.vc, 3, "V")),
		element.SetOutput("VCE", "VCE", b.vce, "V", utils.FormatFixed(b.vce, 3, "V")),
		element.SetOutput("IB", "Base Current IB", b.ib, "A", utils.Micro("A").Format(b.ib)),
		element.SetOutput("IC", "Collector Current IC", b.ic, "A", utils.Milli("A").Format(b.ic)),
		element.SetOutput("IE", "Emitter Current IE", b.ie, "A", utils.Milli("A").Format(b.ie)),
		element.SetOutput("re", "Intrinsic Emitter Resistance re", b.re, "Ω", utils.FormatFixed(b.re, 2, "Ω")),
		element.SetOutput("Av", "Voltage Gain Av", b.av, "", fmt.Sprintf("≈ %.1f (with CE bypass)", b.av)),
		element.SetOutput("Zi", "Input Impedance Zi", b.zi, "Ω", "≈ "+utils.FormatAlt(b.zi, 0, "Ω", utils.Kilo("Ω"))),
		element.SetOutput("region", "Operating Region", float64(region), "", region.String()),
	}, nil
}

// Waveform 直流负载线与工作点Q
// 横轴为 VCE，纵轴为 IC
func (CommonEmitter) Waveform(in types.Inputs) (*types.Waveform, error) {
	b := commonEmitterBias(in)
	vcc := in["VCC"]
	region := Classify(b.vce, b.ic)
	w := &types.Waveform{
		Title:  "DC Load Line and Operating Point Q",
		XLabel: "VCE (V)",
		YLabel: "IC (A)",
		Time:   []float64{0, vcc},
		Value:  []float64{b.icSat, 0},
	}
	w.AddReference(types.AxisX, b.vce, "VCE(Q)")
	w.AddReference(types.AxisY, b.ic, "IC(Q)")
	w.AddMarker(b.vce, b.ic, fmt.Sprintf("Q (%.2fV, %.2fmA) %s", b.vce, b.ic*1e3, region))
	return w, nil
}
