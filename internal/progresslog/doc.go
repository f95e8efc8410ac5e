// Copyright (c) 2020-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for loading keys into a filter.

Tests are included to ensure proper functionality.

## Feature Overview

- Maintains cumulative totals about keys between each logging interval
  - Total number of keys
  - Total number of batches
- Logs all cumulative data every 10 seconds along with the fill ratio of the
  filter
- Immediately logs any outstanding data when forced, such as once the input
  is exhausted
*/
package progresslog
