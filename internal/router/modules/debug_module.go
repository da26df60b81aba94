package modules

import (
	"encoding/json"
	"expvar"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/makemate/agency-backend/internal/infrastructure/memory"
)

// DebugModule serves the expvar counters plus the sizes of its own store.
type DebugModule struct {
	Store *memory.Store
}

func NewDebugModule(store *memory.Store) *DebugModule { return &DebugModule{Store: store} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// Public metrics endpoint (expvar)
	rg.GET("/debug/vars", m.vars)
}

func (m *DebugModule) vars(c *gin.Context) {
	out := map[string]json.RawMessage{}
	expvar.Do(func(kv expvar.KeyValue) {
		out[kv.Key] = json.RawMessage(kv.Value.String())
	})
	st := m.Store.Stats()
	out["store_users"] = json.RawMessage(strconv.Itoa(st.Users))
	out["store_contacts"] = json.RawMessage(strconv.Itoa(st.Contacts))
	out["store_newsletters"] = json.RawMessage(strconv.Itoa(st.Newsletters))
	c.JSON(http.StatusOK, out)
}
