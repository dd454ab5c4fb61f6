package handlers

import (
	"net/http"
)

// Cookie names shared with the dashboard front-end.
const (
	AccessTokenCookieName  = "truelayer_access_token"
	RefreshTokenCookieName = "truelayer_refresh_token"
)

const defaultTokenLifetime = 3600

// newTokenCookie builds an HttpOnly token cookie. The SameSite mode differs
// per flow: the exchange endpoint issues Lax cookies so they survive the
// OAuth redirect back from the provider, while refresh-driven writes on data
// endpoints use Strict.
func newTokenCookie(name, value string, maxAge int, secure bool, sameSite http.SameSite) *http.Cookie {
	if maxAge <= 0 {
		maxAge = defaultTokenLifetime
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// exchangeTokenCookies builds the access and refresh cookies set after a
// successful code exchange.
func exchangeTokenCookies(accessToken, refreshToken string, expiresIn int, secure bool) []*http.Cookie {
	cookies := []*http.Cookie{
		newTokenCookie(AccessTokenCookieName, accessToken, expiresIn, secure, http.SameSiteLaxMode),
	}
	if refreshToken != "" {
		// Refresh tokens do not expire with the access token; give the cookie
		// a long lifetime so silent refresh keeps working.
		cookies = append(cookies, newTokenCookie(RefreshTokenCookieName, refreshToken, 30*24*3600, secure, http.SameSiteLaxMode))
	}
	return cookies
}

// refreshedAccessTokenCookie builds the access cookie written when a data
// endpoint refreshed the token mid-request.
func refreshedAccessTokenCookie(accessToken string, expiresIn int, secure bool) *http.Cookie {
	return newTokenCookie(AccessTokenCookieName, accessToken, expiresIn, secure, http.SameSiteStrictMode)
}

// expiredTokenCookies builds expired cookies that clear both tokens on
// disconnect.
func expiredTokenCookies(secure bool) []*http.Cookie {
	expire := func(name string) *http.Cookie {
		return &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		}
	}
	return []*http.Cookie{expire(AccessTokenCookieName), expire(RefreshTokenCookieName)}
}
