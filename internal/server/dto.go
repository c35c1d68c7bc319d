package server

import (
	"treadscope/internal/analysis"
	"treadscope/internal/timetravel"
	"treadscope/internal/tread"
)

// Wire DTOs. Enums travel as their canonical names and dates as ISO-8601
// strings; the core types never leave the process.

type depthRangeDTO struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type qualityDTO struct {
	Blur       float64 `json:"blur"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Overall    float64 `json:"overall"`
	Acceptable bool    `json:"acceptable"`
}

type estimateDTO struct {
	Bucket     string        `json:"bucket"`
	DepthRange depthRangeDTO `json:"depthRange"`
	Confidence float64       `json:"confidence"`
}

type predictionDTO struct {
	CurrentDepth32      float64 `json:"currentDepth32nds"`
	WearRatePer1000Mi   float64 `json:"wearRatePer1000Miles"`
	WetTractionDropDate string  `json:"wetTractionDropDate"`
	LegalMinimumDate    string  `json:"legalMinimumDate"`
	TireDeadDate        string  `json:"tireDeadDate"`
	RemainingMonths     int     `json:"remainingMonths"`
	ConfidenceBand      float64 `json:"confidenceBand"`
}

type analysisDTO struct {
	ID         string        `json:"id"`
	CreatedAt  string        `json:"createdAt"`
	Quality    qualityDTO    `json:"quality"`
	Estimate   estimateDTO   `json:"estimate"`
	Prediction predictionDTO `json:"prediction"`
}

type stateDTO struct {
	T                 float64 `json:"t"`
	CurrentDate       string  `json:"currentDate"`
	CurrentDepth      float64 `json:"currentDepth"`
	CurrentScore      int     `json:"currentScore"`
	BaseRisk          string  `json:"baseRisk"`
	CurrentRisk       string  `json:"currentRisk"`
	RiskModifier      float64 `json:"riskModifier"`
	RiskDescription   string  `json:"riskDescription"`
	TotalMonths       int     `json:"totalMonths"`
	WeatherMode       string  `json:"weatherMode"`
	SkipRotations     bool    `json:"skipRotations"`
	AggressiveDriving bool    `json:"aggressiveDriving"`
}

func toDepthRangeDTO(r tread.DepthRange) depthRangeDTO {
	return depthRangeDTO{Min: r.Min, Max: r.Max}
}

func toAnalysisDTO(res *analysis.Result) analysisDTO {
	return analysisDTO{
		ID:        res.ID.String(),
		CreatedAt: iso(res.CreatedAt),
		Quality: qualityDTO{
			Blur:       res.Quality.Blur,
			Brightness: res.Quality.Brightness,
			Contrast:   res.Quality.Contrast,
			Overall:    res.Quality.Overall,
			Acceptable: res.Quality.Acceptable,
		},
		Estimate: estimateDTO{
			Bucket:     res.Estimate.Bucket.String(),
			DepthRange: toDepthRangeDTO(res.Estimate.Depth),
			Confidence: res.Estimate.Confidence,
		},
		Prediction: predictionDTO{
			CurrentDepth32:      res.Prediction.CurrentDepth32,
			WearRatePer1000Mi:   res.Prediction.WearRatePer1000Mi,
			WetTractionDropDate: iso(res.Prediction.WetTractionDrop),
			LegalMinimumDate:    iso(res.Prediction.LegalMinimum),
			TireDeadDate:        iso(res.Prediction.TireDead),
			RemainingMonths:     res.Prediction.RemainingMonths,
			ConfidenceBand:      res.Prediction.ConfidenceBand,
		},
	}
}

func toStateDTO(st timetravel.State) stateDTO {
	return stateDTO{
		T:                 st.T,
		CurrentDate:       iso(st.Date),
		CurrentDepth:      st.Depth32,
		CurrentScore:      st.Score,
		BaseRisk:          st.BaseRisk.String(),
		CurrentRisk:       st.Risk.String(),
		RiskModifier:      st.RiskMultiplier,
		RiskDescription:   st.RiskDescription,
		TotalMonths:       st.TotalMonths,
		WeatherMode:       st.WeatherMode.String(),
		SkipRotations:     st.SkipRotations,
		AggressiveDriving: st.AggressiveDriving,
	}
}
