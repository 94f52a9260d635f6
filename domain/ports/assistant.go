package ports

import "context"

// AssistantPort คือ generative-text service ภายนอก (Gemini)
// call เดียวจบ ไม่มี conversation history ฝั่ง model
type AssistantPort interface {
	// GenerateReply ส่ง prompt เต็ม ๆ แล้วรับข้อความตอบกลับ
	// ทุก failure (network, quota, ไม่มี API key, response แปลก) คืน error
	// และห้ามให้รายละเอียดภายในหลุดถึง client
	GenerateReply(ctx context.Context, prompt string) (string, error)

	// IsConfigured ตรวจสอบว่ามี API key ไหม
	// ไม่มี key = chat ตอบ error แบบ generic, ตัว process start ได้ปกติ
	IsConfigured() bool
}
