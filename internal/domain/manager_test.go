package domain_test

import (
	"testing"

	"dsw/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPackageManager_String(t *testing.T) {
	assert.Equal(t, "pacman", domain.Pacman.String())
	assert.Equal(t, "yay", domain.Yay.String())
	assert.Equal(t, "paru", domain.Paru.String())
	assert.Equal(t, "unknown", domain.PackageManager(99).String())
}

func TestParsePackageManager(t *testing.T) {
	for _, m := range domain.PackageManagers() {
		parsed, err := domain.ParsePackageManager(m.String())
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParsePackageManager_Unsupported(t *testing.T) {
	_, err := domain.ParsePackageManager("apt")
	assert.ErrorIs(t, err, domain.ErrUnsupportedManager)

	_, err = domain.ParsePackageManager("")
	assert.ErrorIs(t, err, domain.ErrUnsupportedManager)
}

func TestProfile_HasDisplayManager(t *testing.T) {
	assert.True(t, domain.Profile{DisplayManager: "gdm"}.HasDisplayManager())
	assert.False(t, domain.Profile{}.HasDisplayManager())
}

func TestDMTransition_Empty(t *testing.T) {
	assert.True(t, domain.DMTransition{}.Empty())
	assert.False(t, domain.DMTransition{Disable: "gdm", Enable: "sddm"}.Empty())
	assert.False(t, domain.DMTransition{Enable: "sddm"}.Empty())
}

func TestDiffResult_Empty(t *testing.T) {
	assert.True(t, domain.DiffResult{}.Empty())
	assert.False(t, domain.DiffResult{ToInstall: []string{"sddm"}}.Empty())
}
