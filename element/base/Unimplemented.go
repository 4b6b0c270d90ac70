package base

import "circuitsheet/element"

// Pending 尚未实现的电路，只占据菜单位置
type Pending struct{ *element.Config }

func pending(id, name string, category element.Category) *Pending {
	return &Pending{&element.Config{ID: id, Name: name, Category: category}}
}

// 未实现模型定义
var (
	CurrentDividerType     = element.AddElement(3, pending("current_divider", "Current Divider", element.CategoryACDC))
	RLCCircuitType         = element.AddElement(5, pending("rlc_circuit", "RLC Circuit", element.CategoryACDC))
	CommonCollectorType    = element.AddElement(11, pending("common_collector", "Common Collector", element.CategoryAmplifiers))
	OpAmpInvertingType     = element.AddElement(12, pending("opamp_inverting", "Op-Amp Inverting", element.CategoryAmplifiers))
	OpAmpNonInvertingType  = element.AddElement(13, pending("opamp_noninverting", "Op-Amp Non-Inverting", element.CategoryAmplifiers))
	Timer555MonostableType = element.AddElement(21, pending("timer555_monostable", "555 Timer Monostable", element.CategoryOscillators))
	WienBridgeType         = element.AddElement(22, pending("wien_bridge", "Wien Bridge Oscillator", element.CategoryOscillators))
	HalfWaveType           = element.AddElement(30, pending("half_wave_rectifier", "Half-Wave Rectifier", element.CategoryPowerSupplies))
	FullWaveType           = element.AddElement(31, pending("full_wave_rectifier", "Full-Wave Rectifier", element.CategoryPowerSupplies))
	Regulator7805Type      = element.AddElement(32, pending("regulator_7805", "7805 Voltage Regulator", element.CategoryPowerSupplies))
	BoostConverterType     = element.AddElement(41, pending("boost_converter", "Boost Converter", element.CategoryPowerElectronics))
	BuckBoostType          = element.AddElement(42, pending("buck_boost_converter", "Buck-Boost Converter", element.CategoryPowerElectronics))
	ThreePhaseInverterType = element.AddElement(43, pending("three_phase_inverter", "Three-Phase Inverter", element.CategoryPowerElectronics))
	RCResponseType         = element.AddElement(51, pending("rc_response", "RC Response", element.CategoryElectricalSystems))
	RLCTransientType       = element.AddElement(52, pending("rlc_transient", "RLC Transient", element.CategoryElectricalSystems))
	ThreePhaseSystemType   = element.AddElement(53, pending("three_phase_system", "Three-Phase System", element.CategoryElectricalSystems))
	PowerFactorType        = element.AddElement(54, pending("power_factor_correction", "Power Factor Correction", element.CategoryElectricalSystems))
	TransformerType        = element.AddElement(55, pending("transformer", "Transformer", element.CategoryElectricalSystems))
	StandardResistorsType  = element.AddElement(60, pending("standard_resistors", "Standard Resistor Values", element.CategoryTools))
	ToleranceType          = element.AddElement(61, pending("tolerance", "Tolerance", element.CategoryTools))
)
