package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeContext_EmptyPassesThrough(t *testing.T) {
	assert.Equal(t, "", NormalizeContext(""))
}

func TestNormalizeContext_Synonyms(t *testing.T) {
	assert.Equal(t, "deploy-preview", NormalizeContext("dp"))
	assert.Equal(t, "production", NormalizeContext("prod"))
}

func TestNormalizeContext_BranchPrefix(t *testing.T) {
	assert.Equal(t, "feat/login", NormalizeContext("branch:feat/login"))
	// только ведущий префикс, не вхождение в середине
	assert.Equal(t, "x-branch:y", NormalizeContext("x-branch:y"))
}

func TestNormalizeContext_CanonicalUnchanged(t *testing.T) {
	for _, c := range []string{"all", "production", "deploy-preview", "branch-deploy", "dev", "main"} {
		assert.Equal(t, c, NormalizeContext(c))
	}
}
