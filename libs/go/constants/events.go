package constants

// Tracking event names emitted by the payments task.
const (
	EventPaymentToggle        = "tasklist_payment_toggle"
	EventPaymentSetup         = "tasklist_payment_setup"
	EventPaymentConnectMethod = "tasklist_payment_connect_method"
	EventPaymentInstallMethod = "tasklist_payment_install_method"
	EventPaymentDone          = "tasklist_payment_done"
	EventPaymentSkipTask      = "tasklist_payment_skip_task"
)
