package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Heykelog/PenSH/pkg/config"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kısa", truncate("kısa", 10))
	assert.Equal(t, "uzun ba...", truncate("uzun başlıklı rapor", 10))
}

func TestBrandingDefaults(t *testing.T) {
	b := branding(config.Branding{Organization: "ÖRNEK"})
	assert.Equal(t, "ÖRNEK", b.Organization)
	assert.Equal(t, "GİZLİ BELGE", b.Confidentiality, "unset fields keep defaults")
}
