// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cphb/internal/config"
)

func encodeValue(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.OutputYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: output %q", config.ErrInvalid, format)
	}
}
