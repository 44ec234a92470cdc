// Package crowdfund tracks the finances of a crowdfunding project: partner
// investments, expenses, the payments that settle them, and sales revenue.
//
// A Project is built once, either directly through its Add methods or from a
// validated YAML configuration, and is then queried through pure report
// projections (see the reports_*.go files). All monetary amounts use exact
// decimal arithmetic.
package crowdfund
