// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the input and output documents of a count.

# Input

ElectionInput is what the election service hands over when voting closes:

	{
	  "name": "Board election",
	  "candidates": ["alice", "bob", "carol"],
	  "ballots": [["alice", "carol"], ["bob"], []],
	  "seats": 2,
	  "hide_vote_counts": false
	}

An empty ballot is an abstention.

# Output

  - ResultSnapshot: immutable record of one count, with the round-by-round
    breakdown from package stv and the winners in election order
  - ErrorResponse: error, message

# Constants

Voting method:

	MethodSTV = "stv"
*/
package models
