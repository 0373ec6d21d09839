package agileboot

import "fmt"

// ResponseData is the envelope every backend endpoint wraps its payload in.
type ResponseData[T any] struct {
	// Code is CodeSuccess on success, anything else is a business error.
	Code int `json:"code"`
	// Msg is the human-readable outcome.
	Msg string `json:"msg"`
	// Data is the payload, absent on errors and on endpoints without one.
	Data *T `json:"data,omitempty"`
}

// Err returns nil for a successful envelope and an error wrapping ErrAPIFailure otherwise.
func (r *ResponseData[T]) Err() error {
	if r == nil {
		return ErrEmptyResponse
	}

	return envelopeError(r.Code, r.Msg)
}

// CaptchaDTO is the payload of the captcha endpoint.
type CaptchaDTO struct {
	// CaptchaCodeImg is the base64 encoded captcha image.
	CaptchaCodeImg string `json:"captchaCodeImg"`
	// CaptchaCodeKey identifies the captcha in the backend cache; it is sent back on login.
	CaptchaCodeKey string `json:"captchaCodeKey"`
}

// ConfigDTO is the payload of the system configuration endpoint.
type ConfigDTO struct {
	// IsCaptchaOn reports whether login requires a captcha.
	IsCaptchaOn bool `json:"isCaptchaOn"`
	// Dictionary holds option lists (e.g. for drop-downs) keyed by dictionary type.
	Dictionary map[string][]DictionaryData `json:"dictionary"`
}

// DictionaryData is a single dictionary option.
type DictionaryData struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	CSSTag string `json:"cssTag"`
}

// LoginByPasswordDTO is the body of the password login request.
type LoginByPasswordDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	// CaptchaCode is the text the user read from the captcha image.
	CaptchaCode string `json:"captchaCode"`
	// CaptchaCodeKey is CaptchaDTO.CaptchaCodeKey of the solved captcha.
	CaptchaCodeKey string `json:"captchaCodeKey"`
}

// TokenDTO is returned by login and by the current user endpoint.
type TokenDTO struct {
	// Token is the bearer token for subsequent requests.
	Token string `json:"token"`
	// CurrentUser describes the logged in user.
	CurrentUser CurrentLoginUserDTO `json:"currentUser"`
}

// CurrentLoginUserDTO describes the logged in user together with its role and permissions.
type CurrentLoginUserDTO struct {
	UserInfo    CurrentUserInfoDTO `json:"userInfo"`
	RoleKey     string             `json:"roleKey"`
	Permissions []string           `json:"permissions"`
}

// CurrentUserInfoDTO is the profile of the logged in user. Every field is optional.
type CurrentUserInfoDTO struct {
	Avatar      string    `json:"avatar,omitempty"`
	CreateTime  *DateTime `json:"createTime,omitempty"`
	CreatorID   int64     `json:"creatorId,omitempty"`
	CreatorName string    `json:"creatorName,omitempty"`
	DeptID      int64     `json:"deptId,omitempty"`
	DeptName    string    `json:"deptName,omitempty"`
	Email       string    `json:"email,omitempty"`
	LoginDate   *DateTime `json:"loginDate,omitempty"`
	LoginIP     string    `json:"loginIp,omitempty"`
	NickName    string    `json:"nickName,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	PostID      int64     `json:"postId,omitempty"`
	PostName    string    `json:"postName,omitempty"`
	Remark      string    `json:"remark,omitempty"`
	RoleID      int64     `json:"roleId,omitempty"`
	RoleName    string    `json:"roleName,omitempty"`
	Sex         int       `json:"sex,omitempty"`
	Status      int       `json:"status,omitempty"`
	UpdaterID   int64     `json:"updaterId,omitempty"`
	UpdaterName string    `json:"updaterName,omitempty"`
	UpdateTime  *DateTime `json:"updateTime,omitempty"`
	UserID      int64     `json:"userId,omitempty"`
	Username    string    `json:"username,omitempty"`
	UserType    int       `json:"userType,omitempty"`
}

// RouteMeta is the metadata of a route. Pointer fields distinguish "absent" from the zero value.
type RouteMeta struct {
	// ID is assigned by AddUniqueIDs; the backend does not send it.
	ID                 string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title              string   `json:"title" yaml:"title"`
	Icon               string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	ShowLink           *bool    `json:"showLink,omitempty" yaml:"showLink,omitempty"`
	ShowParent         *bool    `json:"showParent,omitempty" yaml:"showParent,omitempty"`
	Auths              []string `json:"auths,omitempty" yaml:"auths,omitempty"`
	Rank               *int     `json:"rank,omitempty" yaml:"rank,omitempty"`
	FrameSrc           string   `json:"frameSrc,omitempty" yaml:"frameSrc,omitempty"`
	IsFrameSrcInternal *bool    `json:"isFrameSrcInternal,omitempty" yaml:"isFrameSrcInternal,omitempty"`
}

// RouteItem is one node of the menu/route tree.
type RouteItem struct {
	// Name is optional; an empty name counts as absent.
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Path      string      `json:"path" yaml:"path"`
	Component string      `json:"component,omitempty" yaml:"component,omitempty"`
	Redirect  string      `json:"redirect,omitempty" yaml:"redirect,omitempty"`
	Meta      RouteMeta   `json:"meta" yaml:"meta"`
	Children  []RouteItem `json:"children,omitempty" yaml:"children,omitempty"`
}

// AsyncRoutesResponse is the envelope of the dynamic route endpoint.
type AsyncRoutesResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data []RouteItem `json:"data,omitempty"`
}

// Err returns nil for a successful envelope and an error wrapping ErrAPIFailure otherwise.
func (r *AsyncRoutesResponse) Err() error {
	if r == nil {
		return ErrEmptyResponse
	}

	return envelopeError(r.Code, r.Msg)
}

func envelopeError(code int, msg string) error {
	if code == CodeSuccess {
		return nil
	}

	return fmt.Errorf("%w: code %d: %s", ErrAPIFailure, code, msg)
}
