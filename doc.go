// Package gbce implements the Global Beverage Corporation Exchange, a small
// equity-metrics engine computing standard market indicators from an
// append-only log of trades.
//
// The core functionalities include:
//   - Trade Recording: Appending immutable, timestamped trade records to a
//     per-stock ledger, with time-windowed queries over the recent past.
//   - Stock Metrics: Dividend yield and price/earnings ratio for common and
//     preferred stocks, and the volume-weighted stock price (VWSP) over a
//     trailing window.
//   - All-Share Index: The geometric mean of every stock's VWSP, computed
//     in log space for numerical stability.
//   - Data Persistence: Encoding and decoding the exchange state to and from
//     a human-readable, version-controllable JSONL journal.
//
// All monetary arithmetic is exact decimal; results are rounded once, at the
// public boundary, to two fractional digits with ties away from zero.
//
// This package serves as the foundational logic for the `gbce` command-line
// tool.
package gbce
