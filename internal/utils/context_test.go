// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/keeper-reveal/models"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "token", TokenCtxKey.String())
}

func TestGetTokenFromContext_Success(t *testing.T) {
	want := models.Token{SignedString: "abc"}
	ctx := context.WithValue(context.Background(), TokenCtxKey, want)

	got, ok := GetTokenFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "abc", got.SignedString)
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "abc")

	_, ok := GetTokenFromContext(ctx)
	assert.False(t, ok)
}
