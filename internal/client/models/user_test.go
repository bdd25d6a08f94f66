package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Ann Lee", User{FirstName: "Ann", LastName: "Lee"}.FullName())
	assert.Equal(t, "Ann", User{FirstName: "Ann"}.FullName())
	assert.Equal(t, "Lee", User{LastName: "Lee"}.FullName())
}

func TestProfileUpdate_OmitsUnsetFields(t *testing.T) {
	name := "Ann"
	b, err := json.Marshal(ProfileUpdate{FirstName: &name})
	require.NoError(t, err)
	assert.JSONEq(t, `{"first_name":"Ann"}`, string(b))

	assert.False(t, ProfileUpdate{FirstName: &name}.Empty())
	assert.True(t, ProfileUpdate{}.Empty())
}

func TestAuthResponse_DecodesServerPayload(t *testing.T) {
	payload := `{
		"user": {"id": "1", "email": "a@b.com", "first_name": "A", "last_name": "B",
		         "is_verified": true, "is_provider": false,
		         "created_at": "2024-01-02T03:04:05Z", "updated_at": "2024-01-02T03:04:05Z"},
		"tokens": {"access": "A1", "refresh": "R1"}
	}`

	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	assert.Equal(t, ID("1"), resp.User.ID)
	assert.True(t, resp.User.IsVerified)
	assert.Equal(t, AuthTokens{Access: "A1", Refresh: "R1"}, resp.Tokens)
}

func TestPage_DecodesResults(t *testing.T) {
	payload := `{"count": 2, "next": null, "previous": null,
		"results": [{"id": "1", "title": "Fix sink"}, {"id": "2", "title": "Paint fence"}]}`

	var p Page[Job]
	require.NoError(t, json.Unmarshal([]byte(payload), &p))
	assert.Equal(t, 2, p.Count)
	assert.Nil(t, p.Next)
	require.Len(t, p.Results, 2)
	assert.Equal(t, "Paint fence", p.Results[1].Title)
}
