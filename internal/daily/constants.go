package daily

// StreakMax is the length of the reward ladder; a streak never exceeds it.
const StreakMax = 7
