package domain

import (
	"fmt"
	"time"
)

// Calculation is the outcome of one successful pipeline run. It is
// handed to the presentation layer and never stored.
type Calculation struct {
	ID           string      `json:"id"`
	Input        ValidInput  `json:"input"`
	Measurement  Measurement `json:"measurement"`
	BMI          BMI         `json:"bmi"`
	Category     Category    `json:"category"`
	CalculatedAt time.Time   `json:"calculatedAt"`
}

// Summary returns the headline sentence, e.g. "Your BMI is 22.9".
func (c *Calculation) Summary() string {
	return fmt.Sprintf("Your BMI is %s", c.BMI)
}
