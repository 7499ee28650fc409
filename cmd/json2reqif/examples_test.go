package main

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples_Convert(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", "..", "examples"))
	require.NoError(t, err)

	tests := []struct {
		dir     string
		mapping string
		want    []string
	}{
		{
			dir:     "polarion",
			mapping: "mapping.yaml",
			want:    []string{"Specifications: 1", "Objects: 5", "Leaves: 3", "Roots: 2"},
		},
		{
			dir:     "capella",
			mapping: "mapping.json",
			want:    []string{"Specifications: 2", "Objects: 4", "Leaves: 3", "Roots: 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			dir := filepath.Join(root, tt.dir)
			output := filepath.Join(t.TempDir(), tt.dir+".reqif")

			stdout, _, err := run(t,
				"convert", filepath.Join(dir, "input.json"), output,
				"--mapping", filepath.Join(dir, tt.mapping),
				"--seed", tt.dir,
			)
			require.NoError(t, err)

			for _, w := range tt.want {
				assert.Contains(t, stdout, w)
			}

			out, err := os.ReadFile(output)
			require.NoError(t, err)
			assertWellFormed(t, out)
		})
	}
}

func TestExamples_Validate(t *testing.T) {
	for _, mapping := range []string{"polarion/mapping.yaml", "capella/mapping.json"} {
		t.Run(mapping, func(t *testing.T) {
			_, _, err := run(t, "validate", filepath.Join("..", "..", "examples", mapping))
			assert.NoError(t, err)
		})
	}
}

func assertWellFormed(t *testing.T, doc []byte) {
	t.Helper()

	dec := xml.NewDecoder(bytes.NewReader(doc))

	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}

		require.NoError(t, err)
	}
}
