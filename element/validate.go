package element

import (
	"errors"
	"sort"

	"circuitsheet/types"
	"circuitsheet/utils"
)

// Parse 解析并校验输入文本。
// 未提供的参数使用默认值；未定义的参数名、解析错误与定义域错误都会被收集后一并返回，
// 任何错误都意味着不产生输入值。
// 参数raw: 参数名称到输入框文本的映射。
// 返回：归一化后的输入值。
func (config *Config) Parse(raw utils.Fields) (types.Inputs, error) {
	errs := config.unknown(raw)
	in := make(types.Inputs, len(config.Params))
	for _, p := range config.Params {
		v, ok := raw.ParseFloat64(p.Name, p.Default)
		if !ok {
			errs = append(errs, &types.ParseError{Param: p.Name, Text: raw[p.Name]})
			continue
		}
		if !p.Valid(v) {
			errs = append(errs, types.NewDomainError(p.Name, p.Constraint, v))
			continue
		}
		in[p.Name] = p.Normalize(v)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return in, nil
}

// unknown 检查未定义的参数名，按名称排序。
func (config *Config) unknown(raw utils.Fields) []error {
	var names []string
	for name := range raw {
		if _, ok := config.Param(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	errs := make([]error, 0, len(names))
	for _, name := range names {
		errs = append(errs, &types.UnknownParamError{Param: name, ID: config.ID})
	}
	return errs
}
