package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/handylink/internal/client/config"
	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/handylink/internal/client/services"
	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCmd_StoresSession(t *testing.T) {
	stubPipe(t)
	api, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()

	out, err := executeCommand(t, testFactory(url, store), "secret123\n", "login", "--email", "a@b.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome back, Ann Lee!")
	assert.Equal(t, "A1", storedToken(t, store))
	assert.Equal(t, []string{"POST /api/users/login/"}, api.Calls())
}

func TestLoginCmd_PromptsForEmail(t *testing.T) {
	stubPipe(t)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()

	out, err := executeCommand(t, testFactory(url, store), "a@b.com\nsecret123\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter email")
	assert.Contains(t, out, "Enter password")
	assert.Equal(t, "A1", storedToken(t, store))
}

func TestLoginCmd_ValidationStopsBeforeRequest(t *testing.T) {
	stubPipe(t)
	api, url := newFakeAPI(t)

	_, err := executeCommand(t, testFactory(url, metadata.NewMemoryRepository()), "secret123\n", "login", "-e", "not-an-email")
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please enter a valid email address", verrs["email"])
	assert.Empty(t, api.Calls())
}

func TestLoginCmd_ServerRejects(t *testing.T) {
	stubTerminal(t, "wrong-password", nil)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()

	_, err := executeCommand(t, testFactory(url, store), "", "login", "-e", "a@b.com")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password.", errorText(err))
	assert.Empty(t, storedToken(t, store))
}

func TestRegisterCmd(t *testing.T) {
	stubPipe(t)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()
	args := []string{"register", "-e", "ann@example.com", "--first-name", "Ann", "--last-name", "Lee", "--phone", "+371 2000 0000"}

	out, err := executeCommand(t, testFactory(url, store), "secret123\nsecret123\n", args...)
	require.NoError(t, err)
	assert.Contains(t, out, "Registration successful! Please verify your email.")
	assert.Contains(t, out, "Verification code sent.")
	assert.Empty(t, storedToken(t, store), "registration does not sign in")

	_, err = executeCommand(t, testFactory(url, store), "secret123\nsecret999\n", args...)
	require.Error(t, err)
	assert.Equal(t, "Passwords do not match", errorText(err))
}

func TestStatusCmd(t *testing.T) {
	stubPipe(t)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()
	build := testFactory(url, store)

	out, err := executeCommand(t, build, "", "status")
	require.NoError(t, err)
	assert.Equal(t, "Not logged in.\n", out)

	_, err = executeCommand(t, build, "secret123\n", "login", "-e", "a@b.com")
	require.NoError(t, err)

	out, err = executeCommand(t, build, "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as Ann Lee <a@b.com>")
	assert.Contains(t, out, "Account: customer, verified: true")
	assert.NotContains(t, out, "expires", "opaque tokens have no expiry to show")
}

func TestStatusCmd_ShowsJWTExpiry(t *testing.T) {
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), services.KeyAuthToken, []byte(token)))

	out, err := executeCommand(t, testFactory(url, store), "", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in.")
	assert.Contains(t, out, "Access token expires in")
}

func TestLogoutCmd(t *testing.T) {
	stubPipe(t)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()
	build := testFactory(url, store)

	_, err := executeCommand(t, build, "secret123\n", "login", "-e", "a@b.com")
	require.NoError(t, err)

	out, err := executeCommand(t, build, "", "logout")
	require.NoError(t, err)
	assert.Equal(t, "Logged out.\n", out)
	assert.Zero(t, store.Len())
}

func TestRefreshCmd_NoSession(t *testing.T) {
	_, url := newFakeAPI(t)

	_, err := executeCommand(t, testFactory(url, metadata.NewMemoryRepository()), "", "refresh")
	require.ErrorIs(t, err, services.ErrNoRefreshToken)
}

func TestProfileUpdateCmd(t *testing.T) {
	stubPipe(t)
	_, url := newFakeAPI(t)
	store := metadata.NewMemoryRepository()
	build := testFactory(url, store)

	_, err := executeCommand(t, build, "", "profile", "update")
	require.ErrorContains(t, err, "nothing to update")

	_, err = executeCommand(t, build, "secret123\n", "login", "-e", "a@b.com")
	require.NoError(t, err)

	_, err = executeCommand(t, build, "", "profile", "update", "--phone", "call me")
	assert.Equal(t, "Please enter a valid phone number", errorText(err))

	out, err := executeCommand(t, build, "", "profile", "update", "--first-name", "Bo")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile updated successfully!")

	out, err = executeCommand(t, build, "", "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:     Bo")
	assert.Equal(t, "A1", storedToken(t, store))
}

func TestExecute_InvalidConfig(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), []string{"--env-file=", "--store", "etcd", "status"}, nil, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), `Error: unknown store driver "etcd"`)
}

func TestExecute_MemoryStoreStatus(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Execute(context.Background(), []string{"--env-file=", "--store", "memory", "status"}, nil, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Not logged in.\n", out.String())
}

func TestVersionCmd_NeedsNoApp(t *testing.T) {
	build := func(context.Context, *config.Config, io.Reader, io.Writer, io.Writer) (*App, func() error, error) {
		t.Fatal("version must not build the app")
		return nil, nil, nil
	}

	out, err := executeCommand(t, build, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version:")
}

type syncWriter struct {
	bytes.Buffer
	syncs int
}

func (w *syncWriter) Sync() error {
	w.syncs++
	return nil
}

func TestNewAppFromConfig_CloseFlushesZapLogger(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.Store.Driver = "memory"
	cfg.Log.Format = "zap"
	cfg.Log.Level = "debug"

	var out bytes.Buffer
	errOut := &syncWriter{}
	app, closeFn, err := NewAppFromConfig(context.Background(), cfg, strings.NewReader(""), &out, errOut)
	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Contains(t, errOut.String(), "client ready")

	require.NoError(t, closeFn())
	assert.Equal(t, 1, errOut.syncs)
}
