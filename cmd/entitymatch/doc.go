// Command entitymatch enriches business listing CSV files with official
// registry data: matched entity names, registered agents, and standing.
package main
