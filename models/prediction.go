package models

import (
	"encoding/json"
	"time"
)

// PredictRequest is the UI-facing request for a price prediction. It carries
// the backend's canonical field names alongside the synonyms used by the form
// layer (floorArea/propertyAge/locationIndex). Call Canonical before sending
// anything to the wire.
type PredictRequest struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqm   float64 `json:"area_sqm,omitempty"`
	AgeYears  int     `json:"age_years,omitempty"`
	LocIndex  int     `json:"location_index,omitempty"`

	// Synonyms accepted from the form layer.
	FloorArea   float64 `json:"floorArea,omitempty"`
	PropertyAge int     `json:"propertyAge,omitempty"`
	LocationIdx int     `json:"locationIndex,omitempty"`
}

// PredictPayload is the canonical wire shape of POST /predictions. Every
// field is always serialized, including zeroes.
type PredictPayload struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqm   float64 `json:"area_sqm"`
	AgeYears  int     `json:"age_years"`
	LocIndex  int     `json:"location_index"`
}

// Canonical normalizes the request to the backend shape: the canonical field
// wins when it is non-zero, otherwise the synonym is used, otherwise zero.
// A request already in canonical form passes through unchanged.
func (r PredictRequest) Canonical() PredictPayload {
	area := r.AreaSqm
	if area == 0 {
		area = r.FloorArea
	}
	age := r.AgeYears
	if age == 0 {
		age = r.PropertyAge
	}
	loc := r.LocIndex
	if loc == 0 {
		loc = r.LocationIdx
	}

	return PredictPayload{
		Bedrooms:  r.Bedrooms,
		Bathrooms: r.Bathrooms,
		AreaSqm:   area,
		AgeYears:  age,
		LocIndex:  loc,
	}
}

// Prediction is a server-assigned prediction record. Immutable on the client
// except for whole-record deletion.
type Prediction struct {
	ID             string         `json:"id"`
	OwnerID        string         `json:"ownerId"`
	Features       map[string]any `json:"features"`
	PredictedPrice float64        `json:"predictedPrice"`
	ModelVersion   string         `json:"modelVersion"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Version        int64          `json:"version"`
}

// UnmarshalJSON accepts both spellings the backend uses: the create endpoint
// responds with predicted_price/model_version while list and get respond with
// predictedPrice/modelVersion.
func (p *Prediction) UnmarshalJSON(data []byte) error {
	type alias Prediction
	aux := struct {
		*alias
		PredictedPriceSnake float64 `json:"predicted_price"`
		ModelVersionSnake   string  `json:"model_version"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if p.PredictedPrice == 0 {
		p.PredictedPrice = aux.PredictedPriceSnake
	}
	if p.ModelVersion == "" {
		p.ModelVersion = aux.ModelVersionSnake
	}
	return nil
}
