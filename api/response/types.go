/*
Package response 负责 API 层的统一响应。

成功响应直接返回资源本身 (Song 或 Song 数组)，失败响应使用统一信封:

	{ success: false, error: "ERROR_CODE", message: "...", code: 4xx/5xx, request_id: "..." }

HTTP 状态码映射只放在这一层，领域层和应用层不感知。
*/
package response

// RequestIDKey 是 gin context 中保存请求 ID 的键。
const RequestIDKey = "request_id"

// Response 是错误响应的统一信封。
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
