// Package catalog assembles the per-song view the scheduler operates on:
// every measure and measure-group with its rating history and derived
// proficiency stats, partitioned into sorted singles and groups.
package catalog
