// Package wealth provides the calculation core of the DataVest wealth
// management dashboard. It is pure and stateless: every function maps its
// inputs to a fresh result and the only shared data are read-only tables.
//
// The core functionalities include:
//   - Wealth Index: rescaling competitor price series into the growth of a
//     fixed initial investment (Normalize).
//   - Ranking: ordering competitors per period by raw price, with average
//     ranks on ties (Rank).
//   - Cumulative Returns: end-of-window return of each competitor.
//   - Allocation: the optional per-week fund allocation table, aligned on the
//     wealth window.
//   - Fee Calculator: the tiered management-fee schedule, installment policy
//     and monthly comparison against the three-month plan (NewQuote).
//
// Amounts are expressed in millions of Toman and computed with exact decimal
// arithmetic. This package serves as the foundational logic for the
// `datavest` command-line tool.
package wealth
