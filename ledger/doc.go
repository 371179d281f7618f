// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger implements the vote state machine.

Each voter identity moves from NEW to HAS_VOTED(candidate) and may replace
its choice afterwards (REPLACE policy): a first vote increments the chosen
tally, a repeat of the same choice is an idempotent no-op, and a switch
moves one unit from the old tally to the new. The defining invariant is

	sum over tally == number of voters with a recorded choice

after every successful Apply.

REPLACE trades unlinkable-ballot privacy for letting a voter change their
mind; it leans on the identity layer to keep one human from casually
holding many identities.

Mutation and persistence are one atomic step under the ledger lock. The
snapshot is saved before Apply returns, and a failed save rolls the
in-memory change back, so an acknowledged vote is always durable.
*/
package ledger
