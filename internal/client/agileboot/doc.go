// Package agileboot is a client for the AgileBoot admin backend.
// It covers the system configuration, captcha, password login,
// current-user lookup and dynamic route endpoints. Every response is
// decoded into the backend envelope (code, msg, data) and returned as is;
// interpreting a non-zero code is left to the caller.
//
// Route trees returned by GetAsyncRoutes are annotated with synthetic
// ids (name + path) that menu tree builders use to link parents and children.
package agileboot
