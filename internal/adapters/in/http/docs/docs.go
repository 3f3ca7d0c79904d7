// Package docs publishes the embedded OpenAPI document to swag, where
// echo-swagger reads it for /swagger/doc.json and the UI.
package docs

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type document struct {
	json string
}

func (d document) ReadDoc() string {
	return d.json
}

var registerOnce sync.Once

// Register installs spec as the default swag document. swag panics on a
// second registration under one name, so only the first call takes effect.
func Register(spec *openapi3.T) error {
	data, err := spec.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal OpenAPI document: %w", err)
	}
	registerOnce.Do(func() {
		swag.Register(swag.Name, document{json: string(data)})
	})
	return nil
}
