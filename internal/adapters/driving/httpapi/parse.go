package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// inputFields are the RawInput json names, in RawInput field order.
var inputFields = []string{
	"age", "gender",
	"heightUnit", "heightCm", "heightFeet", "heightInches",
	"weightUnit", "weightKg", "weightLbs",
}

var errMalformedBody = errors.New("request body must be a JSON object")

// decodeRawInput reads a JSON object whose fields may be numbers or strings.
// Missing and null fields become empty strings, which validation rejects.
func decodeRawInput(w http.ResponseWriter, r *http.Request) (domain.RawInput, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return domain.RawInput{}, fmt.Errorf("reading request body: %w", err)
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		return domain.RawInput{}, errMalformedBody
	}

	values := gjson.GetManyBytes(body, inputFields...)
	text := make([]string, len(values))
	for i, v := range values {
		text[i] = fieldText(v)
	}
	return rawInputFrom(text), nil
}

// fieldText keeps numbers in their literal form so "175" and 175 validate alike.
func fieldText(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	case gjson.Null:
		return ""
	default:
		return v.Raw
	}
}

func rawInputFromQuery(q url.Values) domain.RawInput {
	text := make([]string, len(inputFields))
	for i, name := range inputFields {
		text[i] = q.Get(name)
	}
	return rawInputFrom(text)
}

func rawInputFrom(text []string) domain.RawInput {
	return domain.RawInput{
		Age:          text[0],
		Gender:       text[1],
		HeightUnit:   text[2],
		HeightCm:     text[3],
		HeightFeet:   text[4],
		HeightInches: text[5],
		WeightUnit:   text[6],
		WeightKg:     text[7],
		WeightLbs:    text[8],
	}
}
