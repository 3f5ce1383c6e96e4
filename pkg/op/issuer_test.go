package op

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuer(t *testing.T) {
	type args struct {
		issuer        string
		allowInsecure bool
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			"empty",
			args{issuer: ""},
			ErrInvalidIssuerNoIssuer,
		},
		{
			"missing host",
			args{issuer: "https:///path"},
			ErrInvalidIssuerMissingHost,
		},
		{
			"http not allowed",
			args{issuer: "http://issuer.com"},
			ErrInvalidIssuerHTTPS,
		},
		{
			"http allowed insecure",
			args{issuer: "http://localhost:9998/", allowInsecure: true},
			nil,
		},
		{
			"fragment",
			args{issuer: "https://issuer.com/#fragment"},
			ErrInvalidIssuerPath,
		},
		{
			"query",
			args{issuer: "https://issuer.com/?query=value"},
			ErrInvalidIssuerPath,
		},
		{
			"valid",
			args{issuer: "https://issuer.com"},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIssuer(tt.args.issuer, tt.args.allowInsecure)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateIssuerPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"empty", "", false},
		{"custom", "/custom/", false},
		{"fragment", "/custom/#fragment", true},
		{"query", "/custom/?query=value", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.path)
			require.NoError(t, err)
			if err := ValidateIssuerPath(u); (err != nil) != tt.wantErr {
				t.Errorf("ValidateIssuerPath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStaticIssuer(t *testing.T) {
	type args struct {
		issuer        string
		allowInsecure bool
	}
	type res struct {
		issuer string
		err    error
	}
	tests := []struct {
		name string
		args args
		res  res
	}{
		{
			"invalid issuer",
			args{
				issuer:        "",
				allowInsecure: false,
			},
			res{
				err: ErrInvalidIssuerNoIssuer,
			},
		},
		{
			"empty path secure",
			args{
				issuer:        "https://issuer.com",
				allowInsecure: false,
			},
			res{
				issuer: "https://issuer.com",
			},
		},
		{
			"custom path secure",
			args{
				issuer:        "https://issuer.com/custom/",
				allowInsecure: false,
			},
			res{
				issuer: "https://issuer.com/custom/",
			},
		},
		{
			"unsecure",
			args{
				issuer:        "http://issuer.com",
				allowInsecure: true,
			},
			res{
				issuer: "http://issuer.com",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, err := StaticIssuer(tt.args.issuer)(tt.args.allowInsecure)
			if tt.res.err != nil {
				assert.ErrorIs(t, err, tt.res.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.res.issuer, issuer(nil))
		})
	}
}

func TestIssuerFromHost(t *testing.T) {
	type args struct {
		path          string
		allowInsecure bool
		target        string
	}
	type res struct {
		issuer string
		err    error
	}
	tests := []struct {
		name string
		args args
		res  res
	}{
		{
			"invalid issuer path",
			args{
				path:          "/#fragment",
				allowInsecure: false,
			},
			res{
				err: ErrInvalidIssuerPath,
			},
		},
		{
			"empty path secure",
			args{
				path:          "",
				allowInsecure: false,
				target:        "https://issuer.com",
			},
			res{
				issuer: "https://issuer.com",
			},
		},
		{
			"custom path secure",
			args{
				path:          "/custom/",
				allowInsecure: false,
				target:        "https://issuer.com",
			},
			res{
				issuer: "https://issuer.com/custom/",
			},
		},
		{
			"custom path no leading slash",
			args{
				path:          "custom/",
				allowInsecure: false,
				target:        "https://issuer.com",
			},
			res{
				issuer: "https://issuer.com/custom/",
			},
		},
		{
			"custom path insecure",
			args{
				path:          "/custom/",
				allowInsecure: true,
				target:        "http://issuer.com",
			},
			res{
				issuer: "http://issuer.com/custom/",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, err := IssuerFromHost(tt.args.path)(tt.args.allowInsecure)
			if tt.res.err != nil {
				assert.ErrorIs(t, err, tt.res.err)
				return
			}
			require.NoError(t, err)
			req := httptest.NewRequest("", tt.args.target, nil)
			assert.Equal(t, tt.res.issuer, issuer(req))
		})
	}
}

func TestIssuerFromForwardedOrHost(t *testing.T) {
	type args struct {
		path   string
		opts   []IssuerFromOption
		target string
		header map[string][]string
	}
	tests := []struct {
		name   string
		args   args
		issuer string
	}{
		{
			"header parse error",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{"Forwarded": {"~~~~"}},
			},
			"https://issuer.com/custom/",
		},
		{
			"no forwarded header",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
			},
			"https://issuer.com/custom/",
		},
		{
			"forwarded header without host",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{"Forwarded": {
					`by=identifier;for=identifier;proto=https`,
				}},
			},
			"https://issuer.com/custom/",
		},
		{
			"forwarded header with host",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{"Forwarded": {
					`by=identifier;for=identifier;host=first.com;proto=https`,
				}},
			},
			"https://first.com/custom/",
		},
		{
			"forwarded header with multiple hosts",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{"Forwarded": {
					`by=identifier;for=identifier;host=first.com;proto=https,host=second.com`,
				}},
			},
			"https://first.com/custom/",
		},
		{
			"multiple forwarded headers hosts",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{"Forwarded": {
					`by=identifier;for=identifier;host=first.com;proto=https,host=second.com`,
					`by=identifier;for=identifier;host=third.com;proto=https`,
				}},
			},
			"https://first.com/custom/",
		},
		{
			"custom header first",
			args{
				path:   "/custom/",
				target: "https://issuer.com",
				header: map[string][]string{
					"Forwarded": {
						`by=identifier;for=identifier;host=first.com;proto=https,host=second.com`,
					},
					"X-Custom-Forwarded": {
						`by=identifier;for=identifier;host=custom.com;proto=https,host=custom2.com`,
					},
				},
				opts: []IssuerFromOption{
					WithIssuerFromCustomHeaders("x-custom-forwarded"),
				},
			},
			"https://custom.com/custom/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer, err := IssuerFromForwardedOrHost(tt.args.path, tt.args.opts...)(false)
			require.NoError(t, err)
			req := httptest.NewRequest("", tt.args.target, nil)
			for k, v := range tt.args.header {
				req.Header[http.CanonicalHeaderKey(k)] = v
			}
			assert.Equal(t, tt.issuer, issuer(req))
		})
	}
}
