package report

import "encoding/json"

// conditionFromCode maps a WMO weather interpretation code (as used by Open-Meteo).
func conditionFromCode(code json.Number) Condition {
	n, err := code.Int64()
	if err != nil {
		return ConditionUnknown
	}

	switch {
	case n == 0:
		return ConditionClear
	case n >= 1 && n <= 3:
		return ConditionCloudy
	case n == 45 || n == 48:
		return ConditionFog
	case n >= 51 && n <= 57:
		return ConditionDrizzle
	case n >= 61 && n <= 67:
		return ConditionRain
	case n >= 71 && n <= 77:
		return ConditionSnow
	case (n >= 80 && n <= 82) || n == 85 || n == 86:
		return ConditionShowers
	case n >= 95 && n <= 99:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}
