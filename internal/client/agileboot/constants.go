package agileboot

const (
	// apiConfigURI is the URI path of the system configuration endpoint.
	apiConfigURI = "getConfig"
	// apiCaptchaURI is the URI path of the captcha image endpoint.
	apiCaptchaURI = "captchaImage"
	// apiLoginURI is the URI path of the password login endpoint.
	apiLoginURI = "login"
	// apiLoginUserInfoURI is the URI path of the current user endpoint.
	apiLoginUserInfoURI = "getLoginUserInfo"
	// apiRoutersURI is the URI path of the dynamic route endpoint.
	apiRoutersURI = "getRouters"
)

const (
	// CodeSuccess is the envelope code of a successful call.
	CodeSuccess = 0

	// configCacheKey is the only key of the system configuration cache.
	configCacheKey = "config"
	// configCacheSize is the capacity of the system configuration cache.
	configCacheSize = 1
)
