package cli

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/bmi-cli/internal/core/domain"
)

// Terminal access, swapped out in tests.
var (
	stdin      io.Reader = os.Stdin
	isTerminal           = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// maxPromptAttempts bounds how often a rejected field is asked again.
const maxPromptAttempts = 3

// inputFlags holds the raw measurement flags shared by calculate and validate.
type inputFlags struct {
	age          string
	gender       string
	heightUnit   string
	heightCm     string
	heightFeet   string
	heightInches string
	weightUnit   string
	weightKg     string
	weightLbs    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.age, "age", "", "age in whole years (1-125)")
	flags.StringVar(&f.gender, "gender", "", "gender: male, female or other")
	flags.StringVar(&f.heightUnit, "height-unit", "", "height unit: cm or ft (default from settings)")
	flags.StringVar(&f.heightCm, "height-cm", "", "height in centimetres (30-300)")
	flags.StringVar(&f.heightFeet, "height-feet", "", "height, feet part (1-8)")
	flags.StringVar(&f.heightInches, "height-inches", "", "height, inches part (0-11)")
	flags.StringVar(&f.weightUnit, "weight-unit", "", "weight unit: kg or lbs (default from settings)")
	flags.StringVar(&f.weightKg, "weight-kg", "", "weight in kilograms (10-1000)")
	flags.StringVar(&f.weightLbs, "weight-lbs", "", "weight in pounds (22-2200)")
}

func (f *inputFlags) rawInput() domain.RawInput {
	return domain.RawInput{
		Age:          f.age,
		Gender:       f.gender,
		HeightUnit:   f.heightUnit,
		HeightCm:     f.heightCm,
		HeightFeet:   f.heightFeet,
		HeightInches: f.heightInches,
		WeightUnit:   f.weightUnit,
		WeightKg:     f.weightKg,
		WeightLbs:    f.weightLbs,
	}
}

func (f *inputFlags) reset() {
	*f = inputFlags{}
}

// rawInputWithDefaults reads the flags and fills omitted units from settings.
func (f *inputFlags) rawInputWithDefaults() domain.RawInput {
	units := currentSettings().Units
	return f.rawInput().WithDefaultUnits(units.Height, units.Weight)
}

// rawField returns a pointer to the RawInput field with the given json name.
func rawField(raw *domain.RawInput, name string) *string {
	switch name {
	case "age":
		return &raw.Age
	case "gender":
		return &raw.Gender
	case "heightUnit":
		return &raw.HeightUnit
	case "heightCm":
		return &raw.HeightCm
	case "heightFeet":
		return &raw.HeightFeet
	case "heightInches":
		return &raw.HeightInches
	case "weightUnit":
		return &raw.WeightUnit
	case "weightKg":
		return &raw.WeightKg
	case "weightLbs":
		return &raw.WeightLbs
	default:
		return nil
	}
}

type promptField struct {
	name  string
	label string
	when  func(domain.RawInput) bool
}

var promptFields = []promptField{
	{"age", "Age (1-125)", always},
	{"gender", "Gender (male, female, other)", always},
	{"heightUnit", "Height unit (cm, ft)", always},
	{"heightCm", "Height (cm)", heightIs(domain.HeightUnitCm)},
	{"heightFeet", "Height (feet)", heightIs(domain.HeightUnitFtIn)},
	{"heightInches", "Height (inches)", heightIs(domain.HeightUnitFtIn)},
	{"weightUnit", "Weight unit (kg, lbs)", always},
	{"weightKg", "Weight (kg)", weightIs(domain.WeightUnitKg)},
	{"weightLbs", "Weight (lbs)", weightIs(domain.WeightUnitLbs)},
}

func always(domain.RawInput) bool { return true }

func heightIs(unit domain.HeightUnit) func(domain.RawInput) bool {
	return func(raw domain.RawInput) bool {
		u, ok := domain.ParseHeightUnit(raw.HeightUnit)
		return ok && u == unit
	}
}

func weightIs(unit domain.WeightUnit) func(domain.RawInput) bool {
	return func(raw domain.RawInput) bool {
		u, ok := domain.ParseWeightUnit(raw.WeightUnit)
		return ok && u == unit
	}
}

// promptMissing asks for every empty field relevant to the selected units.
// Fields are visited in order, so a unit answered here decides which
// measurement prompts follow.
func promptMissing(cmd *cobra.Command, reader *bufio.Reader, raw domain.RawInput) (domain.RawInput, error) {
	for _, f := range promptFields {
		field := rawField(&raw, f.name)
		if strings.TrimSpace(*field) != "" || !f.when(raw) {
			continue
		}
		cmd.Printf("%s: ", f.label)
		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			cmd.Println()
			return raw, errors.New("input closed before all fields were entered")
		}
		*field = strings.TrimSpace(line)
	}
	return raw, nil
}
