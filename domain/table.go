package domain

type Table string

const (
	TableRefData  Table = "refdata"
	TableRelayers Table = "relayers"
)
