// Package web 内嵌前端页面
package web

import _ "embed"

// IndexHTML 单页应用
//
//go:embed index.html
var IndexHTML []byte
