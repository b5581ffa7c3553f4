package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ledgerkit/moneykit/pkg/apperrors"
	"github.com/ledgerkit/moneykit/pkg/money"
)

// CurrencyDefinition is one entry of a currency file. SubUnitsPerUnit and
// Precision are optional and default to 100 and 2, the usual cent convention.
type CurrencyDefinition struct {
	Code            string `mapstructure:"code" validate:"required,len=3"`
	Symbol          string `mapstructure:"symbol" validate:"required,max=5"`
	Name            string `mapstructure:"name" validate:"required"`
	SubUnitName     string `mapstructure:"subUnitName" validate:"required"`
	SubUnitsPerUnit int64  `mapstructure:"subUnitsPerUnit" validate:"omitempty,gt=0"`
	Precision       *int32 `mapstructure:"precision" validate:"omitempty,gte=0"`
}

// Registrar receives validated currencies. *money.Registry satisfies it.
type Registrar interface {
	Register(money.Currency)
}

var validate = validator.New()

// LoadCurrencyDefinitions reads a YAML file with a top-level "currencies" list.
//
//	currencies:
//	  - code: KWD
//	    symbol: KD
//	    name: dinar
//	    subUnitName: fils
//	    subUnitsPerUnit: 1000
//	    precision: 3
func LoadCurrencyDefinitions(path string) ([]CurrencyDefinition, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read currency file %s: %w", path, err)
	}

	var defs []CurrencyDefinition
	if err := v.UnmarshalKey("currencies", &defs); err != nil {
		return nil, fmt.Errorf("failed to parse currency file %s: %w", path, err)
	}
	return defs, nil
}

// ApplyCurrencies validates each definition, builds the currency, and registers
// it. Registration is idempotent, so definitions that shadow an already
// registered code are silently skipped by the registry.
func ApplyCurrencies(defs []CurrencyDefinition, reg Registrar) error {
	for _, def := range defs {
		if err := validate.Struct(def); err != nil {
			return fmt.Errorf("%w: currency definition %q: %v", apperrors.ErrValidation, def.Code, err)
		}

		subUnits := def.SubUnitsPerUnit
		if subUnits == 0 {
			subUnits = 100
		}
		precision := int32(2)
		if def.Precision != nil {
			precision = *def.Precision
		}

		c, err := money.NewCurrencyWithSubUnits(def.Code, def.Symbol, def.Name, def.SubUnitName, subUnits, precision)
		if err != nil {
			return fmt.Errorf("currency definition %q: %w", def.Code, err)
		}
		reg.Register(c)
	}
	return nil
}

// LoadAndRegister is the one-call path: read the environment, and if a currency
// file is configured, load it and register its currencies.
func LoadAndRegister(reg Registrar) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	if cfg.CurrencyFile == "" {
		return nil
	}

	defs, err := LoadCurrencyDefinitions(cfg.CurrencyFile)
	if err != nil {
		return err
	}
	return ApplyCurrencies(defs, reg)
}
