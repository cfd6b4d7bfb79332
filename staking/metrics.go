// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import "github.com/albatross-go/staking/metrics"

var (
	metricStakeCommitted   = metrics.Counter("stake_committed_count")
	metricStakeReverted    = metrics.Counter("stake_reverted_count")
	metricRetireCommitted  = metrics.Counter("retire_committed_count")
	metricUnparkCommitted  = metrics.Counter("unpark_committed_count")
	metricUnstakeCommitted = metrics.Counter("unstake_committed_count")
	metricSlashCommitted   = metrics.Counter("slash_committed_count")
	metricEpochsFinalized  = metrics.Counter("epochs_finalized_count")

	metricTotalBalance  = metrics.Gauge("total_balance")
	metricActiveStakers = metrics.Gauge("active_stakers_count")
	metricParkedCurrent = metrics.Gauge("parked_current_count")
)

// reportGauges refreshes the size/balance gauges from c's current state.
// Called after a successful CommitStake, RevertStake, ApplyRetire,
// ApplyUnpark, CommitUnstake, CommitSlash and CommitFinalizeEpoch; the
// other revert paths and the single-sided Retire/Unpark commits do not
// refresh the gauges.
func (c *Contract) reportGauges() {
	metricTotalBalance.Set(float64(c.totalBalance))
	metricActiveStakers.Set(float64(c.active.Len()))
	metricParkedCurrent.Set(float64(len(c.currentParking)))
}
