package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vulcan/internal/core/domain"
)

func TestNewFrozenSet(t *testing.T) {
	set, err := domain.NewFrozenSet("requests==2.31.0", "Idna==3.7", "certifi==2024.2.2")
	require.NoError(t, err)

	assert.Equal(t, []string{"certifi", "idna", "requests"}, set.Names())
	assert.Equal(t, domain.Requirement("Idna==3.7"), set["idna"])
	assert.Equal(t, []domain.Requirement{"certifi==2024.2.2", "Idna==3.7", "requests==2.31.0"}, set.Sorted())
}

func TestNewFrozenSet_Duplicate(t *testing.T) {
	_, err := domain.NewFrozenSet("foo-bar==1.0", "Foo_Bar==1.1")
	require.ErrorIs(t, err, domain.ErrDuplicatePackage)
}

func TestNewFrozenSet_Malformed(t *testing.T) {
	_, err := domain.NewFrozenSet("ok==1.0", "==2.0")
	require.ErrorIs(t, err, domain.ErrMalformedRequirement)
}

func TestFrozenSet_PinnedFrom(t *testing.T) {
	extra, err := domain.NewFrozenSet("requests==2.30.0", "idna==3.6")
	require.NoError(t, err)
	canonical, err := domain.NewFrozenSet("requests==2.31.0", "idna==3.7", "pytest==8.0.0")
	require.NoError(t, err)

	pins, err := extra.PinnedFrom(canonical)
	require.NoError(t, err)
	assert.Equal(t, []domain.Requirement{"idna==3.7", "requests==2.31.0"}, pins)
}

func TestFrozenSet_PinnedFrom_Missing(t *testing.T) {
	extra, err := domain.NewFrozenSet("requests==2.30.0", "colorama==0.4.6")
	require.NoError(t, err)
	canonical, err := domain.NewFrozenSet("requests==2.31.0")
	require.NoError(t, err)

	_, err = extra.PinnedFrom(canonical)
	require.ErrorIs(t, err, domain.ErrMissingPin)
	assert.Contains(t, err.Error(), "package missing from combined resolution")
}
