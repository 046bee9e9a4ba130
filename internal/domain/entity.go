package domain

// IDNone is the sentinel for a remote identity that the server has not
// assigned yet (or that could not be read from the page).
const IDNone int64 = 0
