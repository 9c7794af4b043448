package main

import "github.com/carson-networks/bank-ledger/cmd"

func main() {
	cmd.Execute()
}
