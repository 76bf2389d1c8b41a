package responses

import "github.com/cyphera/store-admin/libs/go/types/business"

// PaymentsTaskResponse is the payments task screen returned after every transition
type PaymentsTaskResponse struct {
	Object string `json:"object"`
	business.PaymentsTaskView
}

// ConfigureMethodResponse reports how a method's setup flow was opened
type ConfigureMethodResponse struct {
	Mode string               `json:"mode"`
	Task PaymentsTaskResponse `json:"task"`
}

// NewPaymentsTaskResponse wraps a task view
func NewPaymentsTaskResponse(view business.PaymentsTaskView) PaymentsTaskResponse {
	return PaymentsTaskResponse{Object: "payments_task", PaymentsTaskView: view}
}
