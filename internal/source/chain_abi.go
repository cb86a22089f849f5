package source

// Competitions contract methods read by ChainSource
const competitionsABI = `[
  {"type":"function","name":"getCompetition","stateMutability":"view",
   "inputs":[{"name":"competitionId","type":"uint256"}],
   "outputs":[{"name":"competition","type":"tuple","components":[
     {"name":"creator","type":"address"},
     {"name":"prizeDistributed","type":"bool"},
     {"name":"theme","type":"string"},
     {"name":"submissionDeadline","type":"uint256"},
     {"name":"votingDeadline","type":"uint256"},
     {"name":"prizePool","type":"uint256"},
     {"name":"submissions","type":"uint256[]"},
     {"name":"winningPostId","type":"uint256"}]}]},
  {"type":"function","name":"getVotes","stateMutability":"view",
   "inputs":[{"name":"competitionId","type":"uint256"},{"name":"postId","type":"uint256"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getVoted","stateMutability":"view",
   "inputs":[{"name":"competitionId","type":"uint256"},{"name":"voter","type":"address"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getSubmitted","stateMutability":"view",
   "inputs":[{"name":"competitionId","type":"uint256"},{"name":"postId","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getWinningAuthor","stateMutability":"view",
   "inputs":[{"name":"competitionId","type":"uint256"}],
   "outputs":[{"name":"","type":"address"}]}
]`

// Feed contract methods read by ChainSource
const feedABI = `[
  {"type":"function","name":"getPost","stateMutability":"view",
   "inputs":[{"name":"postId","type":"uint256"}],
   "outputs":[{"name":"post","type":"tuple","components":[
     {"name":"author","type":"address"},
     {"name":"authorPostSequentialId","type":"uint256"},
     {"name":"postSequentialId","type":"uint256"},
     {"name":"contentURI","type":"string"},
     {"name":"rootPostId","type":"uint256"},
     {"name":"repostedPostId","type":"uint256"},
     {"name":"quotedPostId","type":"uint256"},
     {"name":"repliedPostId","type":"uint256"},
     {"name":"creationTimestamp","type":"uint80"},
     {"name":"creationSource","type":"address"},
     {"name":"lastUpdatedTimestamp","type":"uint80"},
     {"name":"lastUpdateSource","type":"address"},
     {"name":"isDeleted","type":"bool"}]}]}
]`
