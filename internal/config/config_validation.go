// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the client config against its struct tags and maps the
// first failing field to the sentinel of its group.
func (cfg *ClientConfig) validate() error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	detail := fmt.Sprintf("%s failed on %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())

	switch {
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.Adapter."):
		return fmt.Errorf("%w: %s", ErrInvalidAdapterConfigs, detail)
	case strings.HasPrefix(fe.Namespace(), "ClientConfig.Storage."):
		return fmt.Errorf("%w: %s", ErrInvalidStorageConfigs, detail)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAppConfigs, detail)
	}
}
