package types

const DefaultPageSize = 20
