// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/agrikom/agrimarket-backend/internal/config"
	"github.com/agrikom/agrimarket-backend/internal/events"
	"github.com/agrikom/agrimarket-backend/internal/ledger"
	"github.com/agrikom/agrimarket-backend/internal/localstore"
	"github.com/agrikom/agrimarket-backend/internal/repository"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

// End-to-end exercise over the local backend only, the same configuration
// the server falls back to when no remote parameters are set.
type RouterTestSuite struct {
	suite.Suite
	router *gin.Engine
	bus    *events.Bus
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store, err := localstore.Open(filepath.Join(suite.T().TempDir(), "router.db"))
	require.NoError(suite.T(), err)
	suite.T().Cleanup(func() { store.Close() })

	cfg := &config.Config{
		Environment: "test",
		Server:      config.ServerConfig{Host: "localhost", Port: "0"},
		JWT: config.JWTConfig{
			SecretKey:       "router-test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 2,
		},
	}

	suite.bus = events.NewBus()
	repos := repository.New(nil, store)
	l := ledger.New(repos.Revenue, suite.bus)

	suite.router, _ = Initialize(repos, suite.bus, l, cfg)
}

func (suite *RouterTestSuite) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (suite *RouterTestSuite) registerUser(username, email, role string) string {
	w := suite.do("POST", "/v1/auth/register", "", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": "Password123",
		"role":     role,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	data := suite.decode(w)["data"].(map[string]interface{})
	return data["access_token"].(string)
}

func (suite *RouterTestSuite) TestHealthCheck() {
	w := suite.do("GET", "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestUnauthenticatedCatalogIsRejected() {
	w := suite.do("GET", "/v1/products", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestSellProductAndCompleteOrder() {
	sellerToken := suite.registerUser("alice", "alice@example.com", "seller")
	buyerToken := suite.registerUser("bob", "bob@example.com", "buyer")

	// Seller publishes a product.
	w := suite.do("POST", "/v1/products", sellerToken, map[string]interface{}{
		"name":     "Beras Merah",
		"price":    25000,
		"category": "produce",
		"stock":    10,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	product := suite.decode(w)["data"].(map[string]interface{})
	productID := product["id"].(string)

	// The marketplace shows it without authentication.
	w = suite.do("GET", "/v1/marketplace", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	listing := suite.decode(w)["data"].([]interface{})
	suite.Require().Len(listing, 1)

	// Buyer orders two units.
	w = suite.do("POST", "/v1/orders", buyerToken, map[string]interface{}{
		"product_id": productID,
		"quantity":   2,
	})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	order := suite.decode(w)["data"].(map[string]interface{})
	suite.Equal(float64(50000), order["total_idr"])
	orderID := order["id"].(string)

	// Buyer cannot complete; the order stays pending.
	w = suite.do("PUT", "/v1/orders/"+orderID+"/status", buyerToken, map[string]interface{}{
		"status": "completed",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("pending", suite.decode(w)["data"].(map[string]interface{})["status"])

	// Seller completes and is credited.
	w = suite.do("PUT", "/v1/orders/"+orderID+"/status", sellerToken, map[string]interface{}{
		"status": "completed",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("completed", suite.decode(w)["data"].(map[string]interface{})["status"])

	w = suite.do("GET", "/v1/revenue", sellerToken, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(float64(50000), suite.decode(w)["data"].(map[string]interface{})["total_idr"])
}

func (suite *RouterTestSuite) TestBuyerCannotPublishProducts() {
	buyerToken := suite.registerUser("bob", "bob@example.com", "buyer")

	w := suite.do("POST", "/v1/products", buyerToken, map[string]interface{}{
		"name":     "Beras",
		"price":    1000,
		"category": "produce",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestNotificationStreamRequiresAuth() {
	w := suite.do("GET", "/v1/ws", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *RouterTestSuite) TestNotificationStreamDeliversBusEvents() {
	srv := httptest.NewServer(suite.router)
	defer srv.Close()

	token, err := utils.GenerateJWT(uuid.New(), "alice", "seller", "seller:alice", 1)
	suite.Require().NoError(err)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws?token=" + token
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	suite.Require().NoError(err)
	defer conn.Close()
	suite.Equal(http.StatusSwitchingProtocols, resp.StatusCode)

	// The hub registers the client right after the handshake; give it a
	// moment before publishing.
	time.Sleep(100 * time.Millisecond)
	suite.bus.Publish(events.TopicRevenue, "seller:alice")

	require.NoError(suite.T(), conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var n events.Notification
	suite.Require().NoError(conn.ReadJSON(&n))
	suite.Equal(events.TopicRevenue, n.Topic)
	suite.Equal("seller:alice", n.Owner)
}

func (suite *RouterTestSuite) TestAdminRoutesRequireAdminRole() {
	sellerToken := suite.registerUser("alice", "alice@example.com", "seller")

	w := suite.do("GET", "/v1/admin/stats", sellerToken, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
