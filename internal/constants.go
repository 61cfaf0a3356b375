package internal

const ApplicationName = "ghsa-db"
