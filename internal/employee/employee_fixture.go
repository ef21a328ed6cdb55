package employee

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed fixtures/employees.json
var fixtureJSON []byte

// DefaultFixture returns the bundled roster written on first use of an
// empty backend. Each call returns a fresh slice.
func DefaultFixture() ([]Employee, error) {
	var out []Employee
	if err := json.Unmarshal(fixtureJSON, &out); err != nil {
		return nil, fmt.Errorf("decode employee fixture: %w", err)
	}
	return out, nil
}
