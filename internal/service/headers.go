package service

import (
	"fmt"
	"net/http"

	"roproxy-gateway/internal/config"
)

const (
	clientUserAgent  = "Roblox/WinInet"
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	platformOrigin   = "https://www.roblox.com"
)

// headerProfiles maps a profile name to the fixed outbound header block.
// Nothing from the inbound request is ever merged into these.
var headerProfiles = map[string]http.Header{
	config.HeaderProfileMinimal: {
		"User-Agent": {clientUserAgent},
		"Accept":     {"application/json"},
	},
	config.HeaderProfileBrowser: {
		"User-Agent":      {browserUserAgent},
		"Accept":          {"application/json"},
		"Accept-Language": {"en-US,en;q=0.9"},
		"Accept-Encoding": {"gzip, deflate, br"},
		"Referer":         {platformOrigin + "/"},
		"Origin":          {platformOrigin},
		"Connection":      {"keep-alive"},
		"Sec-Fetch-Dest":  {"empty"},
		"Sec-Fetch-Mode":  {"cors"},
		"Sec-Fetch-Site":  {"same-site"},
	},
}

// outboundHeader returns a copy of the header block for profile.
func outboundHeader(profile string) (http.Header, error) {
	h, ok := headerProfiles[profile]
	if !ok {
		return nil, fmt.Errorf("unknown header profile %q", profile)
	}
	return h.Clone(), nil
}
