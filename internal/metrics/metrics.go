package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dashboard"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)

	MailSendSuccess = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "mail_send_success_total", Help: "Total number of successful mail sends."},
		[]string{"host"},
	)
	MailSendFailure = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "mail_send_failure_total", Help: "Total number of failed mail sends."},
		[]string{"host"},
	)
	// EmailLogWriteFailures counts audit rows that could not be written after a successful send.
	EmailLogWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: namespace, Name: "email_log_write_failures_total", Help: "Email audit rows that failed to insert."},
	)

	FetchFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "fetch_failures_total", Help: "Record store reads that failed, by entity."},
		[]string{"entity"},
	)
)

// RegisterCollectors registers every dashboard collector with reg.
func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(MailSendSuccess)
	reg.MustRegister(MailSendFailure)
	reg.MustRegister(EmailLogWriteFailures)
	reg.MustRegister(FetchFailures)
}
