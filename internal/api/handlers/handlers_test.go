package handlers

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	cognito "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/frogstagram/frogstagram/internal/auth"
	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/frogstagram/frogstagram/internal/config"
	"github.com/frogstagram/frogstagram/internal/enrich"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeCognito struct {
	signUpErr   error
	confirmErr  error
	initiateErr error
	authResult  *types.AuthenticationResultType
}

func (f *fakeCognito) SignUp(_ context.Context, _ *cognito.SignUpInput, _ ...func(*cognito.Options)) (*cognito.SignUpOutput, error) {
	return &cognito.SignUpOutput{}, f.signUpErr
}

func (f *fakeCognito) ConfirmSignUp(_ context.Context, _ *cognito.ConfirmSignUpInput, _ ...func(*cognito.Options)) (*cognito.ConfirmSignUpOutput, error) {
	return &cognito.ConfirmSignUpOutput{}, f.confirmErr
}

func (f *fakeCognito) InitiateAuth(_ context.Context, _ *cognito.InitiateAuthInput, _ ...func(*cognito.Options)) (*cognito.InitiateAuthOutput, error) {
	if f.initiateErr != nil {
		return nil, f.initiateErr
	}
	return &cognito.InitiateAuthOutput{AuthenticationResult: f.authResult}, nil
}

func makeJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

// newTestRouter wires the handler onto the same routes main registers,
// against the in-memory store and a fake identity provider.
func newTestRouter(t *testing.T, store blobstore.Store, provider auth.CognitoAPI, enricher *enrich.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if provider == nil {
		provider = &fakeCognito{}
	}

	cfg := &config.AppConfig{Bucket: "test-bucket"}
	h := NewHandler(store, auth.NewService(provider, "client-id"), enricher, cfg)

	r := gin.New()
	r.Use(sessions.Sessions("frogstagram_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthCheckHandler)

	r.POST("/auth/sign-up", h.SignUpHandler)
	r.POST("/auth/verify", h.VerifyHandler)
	r.POST("/auth/login", h.LoginHandler)
	r.POST("/auth/logout", h.LogoutHandler)
	r.GET("/auth/session", h.SessionHandler)

	r.GET("/api/posts", h.PostsHandler)
	r.POST("/api/posts/:postId/like", h.LikeHandler)
	r.DELETE("/api/posts/:postId/like", h.UnlikeHandler)
	r.POST("/api/posts/:postId/comment", h.CommentHandler)

	r.GET("/api/follow", h.FollowStatusHandler)
	r.POST("/api/follow", h.FollowHandler)
	r.DELETE("/api/follow", h.UnfollowHandler)

	r.POST("/api/s3-presigned-url", h.PresignedURLHandler)
	r.POST("/api/s3-delete", h.DeleteObjectHandler)
	r.GET("/api/images/*path", h.ImageHandler)

	r.POST("/create/details", h.CreateDetailsHandler)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// presignStore lets the presign route be exercised without S3.
type presignStore struct {
	*blobstore.InMemoryStore
}

func (p *presignStore) PresignPut(_ context.Context, key, contentType string, _ time.Duration) (string, error) {
	return "https://signed.example.com/" + key + "?ct=" + contentType, nil
}
