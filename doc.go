// Package finance provides the types and functions of a single-user personal
// finance tracker. It is designed to be local-first: records live in a store
// owned by the user and every figure shown to the user is derived from them on
// demand.
//
// The core functionalities include:
//   - Budgeting: income and expense transactions, totals, per-category
//     breakdown and an over-budget warning.
//   - Investments: stock and crypto holdings valued at live prices, with a
//     fallback to the purchase price, cost basis, profit and loss and
//     allocation.
//   - Session: an explicit login/logout lifecycle scoping every query to the
//     current user.
//
// The aggregation functions (IncomeExpenseTotals, ExpensesByCategory,
// PortfolioValue, CostBasis, Allocation...) are pure. The Tracker composes them
// with a record store and a price source. This package serves as the
// foundational logic for the `fin` command-line tool.
package finance
