package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerate(t *testing.T) {
	require.NoError(t, ValidateGenerate([]byte(`{"template":"modern","data":{}}`)))

	err := ValidateGenerate([]byte(`{"template":"","data":[]}`))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Problems, 2)

	assert.Error(t, ValidateGenerate([]byte(`{"data":{}}`)))
	assert.Error(t, ValidateGenerate([]byte(`not json`)))
}

func TestValidatePreview(t *testing.T) {
	assert.NoError(t, ValidatePreview([]byte(`{"data":{"name":"x"}}`)))
	assert.Error(t, ValidatePreview([]byte(`{"template":"modern"}`)))
}

func TestSuggestedFilename(t *testing.T) {
	assert.Equal(t, "AnnLee_resume.pdf", SuggestedFilename("Ann Lee"))
	assert.Equal(t, "JosO2_resume.pdf", SuggestedFilename("José O'2"))
	assert.Equal(t, "resume.pdf", SuggestedFilename(" ?! "))
}
