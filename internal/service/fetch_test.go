package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFetch(t *testing.T) {
	assert.Equal(t, fetchOK, classifyFetch(nil))

	// forbidden распознаётся и в обёрнутом виде
	assert.Equal(t, fetchForbidden, classifyFetch(adapter.ErrForbidden))
	assert.Equal(t, fetchForbidden, classifyFetch(fmt.Errorf("fetch account env: %w", adapter.ErrForbidden)))

	assert.Equal(t, fetchFailed, classifyFetch(adapter.ErrUnauthorized))
	assert.Equal(t, fetchFailed, classifyFetch(adapter.ErrInternalServerError))
	assert.Equal(t, fetchFailed, classifyFetch(errors.New("connection refused")))
}
