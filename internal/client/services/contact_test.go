package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

func TestContact_Prefill(t *testing.T) {
	ctx := context.Background()
	_, g := setupStore(t)
	c := NewContactService(&fakeClient{}, g, logging.Nop())

	assert.Equal(t, models.ContactMessage{}, c.Prefill(ctx))

	require.NoError(t, g.Login(ctx, validToken(t, jwt.MapClaims{}), models.UserProfile{ID: "1", UserName: "A", Email: "a@b.com"}))
	assert.Equal(t, models.ContactMessage{Name: "A", Email: "a@b.com"}, c.Prefill(ctx))
}

func TestContact_Send(t *testing.T) {
	fc := &fakeClient{}
	_, g := setupStore(t)
	c := NewContactService(fc, g, logging.Nop())

	msg := models.ContactMessage{Name: "A", Email: "a@b.com", Phone: "123", Message: "Need 5000 bottles"}
	require.NoError(t, c.Send(context.Background(), msg))
	assert.Equal(t, msg, fc.LastContact)

	err := c.Send(context.Background(), models.ContactMessage{Name: "A", Email: "a@b.com"})
	require.ErrorIs(t, err, common.ErrorValidation)
}
