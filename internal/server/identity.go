package server

import (
	"context"
	"net/http"

	"tailscale.com/client/tailscale/apitype"
)

// WhoIser resolves a tailnet peer address to its identity. The tsnet
// local client satisfies it.
type WhoIser interface {
	WhoIs(ctx context.Context, remoteAddr string) (*apitype.WhoIsResponse, error)
}

// UserInfo identifies the viewer of a request. It is informational only;
// access is controlled by the tailnet.
type UserInfo struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

type contextKey int

const userInfoKey contextKey = iota

var localUser = UserInfo{Login: "local", DisplayName: "Local Dev User"}

// identify stores the caller's tailnet identity in the request context
// when Tailscale is enabled.
func (s *Server) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := localUser
		if s.whois != nil {
			who, err := s.whois.WhoIs(r.Context(), r.RemoteAddr)
			if err != nil {
				s.log.Warn("tailscale whois failed", "remote", r.RemoteAddr, "error", err)
			} else if who.UserProfile != nil {
				info = UserInfo{Login: who.UserProfile.LoginName, DisplayName: who.UserProfile.DisplayName}
			}
		}
		ctx := context.WithValue(r.Context(), userInfoKey, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userInfoFromContext(r *http.Request) UserInfo {
	if info, ok := r.Context().Value(userInfoKey).(UserInfo); ok {
		return info
	}
	return localUser
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}
