package gitcmd

// Schema tables for the supported git subcommands. Each table is constructed
// once at package init, never mutated afterwards, and reused across
// invocations. The alias sets are exported so callers can build supplied
// options with Aliases.Option.
//
// References: https://git-scm.com/docs/git-<command>

// git add
var (
	AddVerbose  = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	AddForce    = Aliases{{Name: "force"}, {Name: "f", Short: true}}
	AddUpdate   = Aliases{{Name: "update"}, {Name: "u", Short: true}}
	AddPathspec = Aliases{{Name: "pathspec"}}
)

// Add is the schema for "git add"
var Add = &Command{
	Name: "add",
	Definitions: []Definition{
		{Aliases: AddVerbose, Kinds: []Kind{KindBool}},
		{Aliases: AddForce, Kinds: []Kind{KindBool}},
		{Aliases: AddUpdate, Kinds: []Kind{KindBool}},
		{Aliases: AddPathspec, Kinds: []Kind{KindStringList}, Positional: true, Position: 0},
	},
}

// git checkout
var (
	CheckoutQuiet      = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	CheckoutForce      = Aliases{{Name: "force"}, {Name: "f", Short: true}}
	CheckoutNewBranch  = Aliases{{Name: "b", Short: true}}
	CheckoutBranch     = Aliases{{Name: "branch"}}
	CheckoutStartPoint = Aliases{{Name: "start-point"}}
)

// Checkout is the schema for "git checkout"
var Checkout = &Command{
	Name: "checkout",
	Definitions: []Definition{
		{Aliases: CheckoutQuiet, Kinds: []Kind{KindBool}},
		{Aliases: CheckoutForce, Kinds: []Kind{KindBool}},
		{Aliases: CheckoutNewBranch, Kinds: []Kind{KindString}},
		{Aliases: CheckoutBranch, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: CheckoutStartPoint, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// git clone
var (
	CloneVerbose           = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	CloneQuiet             = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	CloneLocal             = Aliases{{Name: "local"}, {Name: "l", Short: true}}
	CloneNoHardlinks       = Aliases{{Name: "no-hardlinks"}}
	CloneShared            = Aliases{{Name: "shared"}, {Name: "s", Short: true}}
	CloneBare              = Aliases{{Name: "bare"}}
	CloneOrigin            = Aliases{{Name: "origin"}, {Name: "o", Short: true}}
	CloneBranch            = Aliases{{Name: "branch"}, {Name: "b", Short: true}}
	CloneNoTags            = Aliases{{Name: "no-tags"}}
	CloneRecurseSubmodules = Aliases{{Name: "recurse-submodules"}}
	CloneRepository        = Aliases{{Name: "repository"}}
	CloneDirectory         = Aliases{{Name: "directory"}}
)

// Clone is the schema for "git clone"
var Clone = &Command{
	Name: "clone",
	Definitions: []Definition{
		{Aliases: CloneVerbose, Kinds: []Kind{KindBool}},
		{Aliases: CloneQuiet, Kinds: []Kind{KindBool}},
		{Aliases: CloneLocal, Kinds: []Kind{KindBool}},
		{Aliases: CloneNoHardlinks, Kinds: []Kind{KindBool}},
		{Aliases: CloneShared, Kinds: []Kind{KindBool}},
		{Aliases: CloneBare, Kinds: []Kind{KindBool}},
		{Aliases: CloneOrigin, Kinds: []Kind{KindString}},
		{Aliases: CloneBranch, Kinds: []Kind{KindString}},
		{Aliases: CloneNoTags, Kinds: []Kind{KindBool}},
		{Aliases: CloneRecurseSubmodules, Kinds: []Kind{KindBool, KindString}},
		{Aliases: CloneRepository, Kinds: []Kind{KindString}, Positional: true, Position: 0, Required: true},
		{Aliases: CloneDirectory, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// git commit
var (
	CommitVerbose  = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	CommitQuiet    = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	CommitAll      = Aliases{{Name: "all"}, {Name: "a", Short: true}}
	CommitMessage  = Aliases{{Name: "message"}, {Name: "m", Short: true}}
	CommitAmend    = Aliases{{Name: "amend"}}
	CommitNoEdit   = Aliases{{Name: "no-edit"}}
	CommitPathspec = Aliases{{Name: "pathspec"}}
)

// Commit is the schema for "git commit"
var Commit = &Command{
	Name: "commit",
	Definitions: []Definition{
		{Aliases: CommitVerbose, Kinds: []Kind{KindBool}},
		{Aliases: CommitQuiet, Kinds: []Kind{KindBool}},
		{Aliases: CommitAll, Kinds: []Kind{KindBool}},
		{Aliases: CommitMessage, Kinds: []Kind{KindString}},
		{Aliases: CommitAmend, Kinds: []Kind{KindBool}},
		{Aliases: CommitNoEdit, Kinds: []Kind{KindBool}},
		{Aliases: CommitPathspec, Kinds: []Kind{KindString}, Positional: true, Position: 0},
	},
}

// git config
var (
	ConfigName         = Aliases{{Name: "name"}}
	ConfigValue        = Aliases{{Name: "value"}}
	ConfigValuePattern = Aliases{{Name: "value-pattern"}}
)

// Config is the schema for "git config"
var Config = &Command{
	Name: "config",
	Definitions: []Definition{
		{Aliases: ConfigName, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: ConfigValue, Kinds: []Kind{KindString}, Positional: true, Position: 1},
		{Aliases: ConfigValuePattern, Kinds: []Kind{KindString}, Positional: true, Position: 2},
	},
}

// git for-each-ref
var (
	ForEachRefCount      = Aliases{{Name: "count"}}
	ForEachRefSort       = Aliases{{Name: "sort"}}
	ForEachRefFormat     = Aliases{{Name: "format"}}
	ForEachRefPointsAt   = Aliases{{Name: "points-at"}}
	ForEachRefMerged     = Aliases{{Name: "merged"}}
	ForEachRefNoMerged   = Aliases{{Name: "no-merged"}}
	ForEachRefContains   = Aliases{{Name: "contains"}}
	ForEachRefNoContains = Aliases{{Name: "no-contains"}}
	ForEachRefIgnoreCase = Aliases{{Name: "ignore-case"}}
	ForEachRefOmitEmpty  = Aliases{{Name: "omit-empty"}}
	ForEachRefExclude    = Aliases{{Name: "exclude"}}
	ForEachRefPattern    = Aliases{{Name: "pattern"}}
)

// ForEachRef is the schema for "git for-each-ref"
var ForEachRef = &Command{
	Name: "for-each-ref",
	Definitions: []Definition{
		{Aliases: ForEachRefCount, Kinds: []Kind{KindInt}, Separator: "="},
		{Aliases: ForEachRefSort, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: ForEachRefFormat, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: ForEachRefPointsAt, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: ForEachRefMerged, Kinds: []Kind{KindBool, KindString}, Separator: "="},
		{Aliases: ForEachRefNoMerged, Kinds: []Kind{KindBool, KindString}, Separator: "="},
		{Aliases: ForEachRefContains, Kinds: []Kind{KindBool, KindString}, Separator: "="},
		{Aliases: ForEachRefNoContains, Kinds: []Kind{KindBool, KindString}, Separator: "="},
		{Aliases: ForEachRefIgnoreCase, Kinds: []Kind{KindBool}},
		{Aliases: ForEachRefOmitEmpty, Kinds: []Kind{KindBool}},
		{Aliases: ForEachRefExclude, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: ForEachRefPattern, Kinds: []Kind{KindString}, Positional: true, Position: 0},
	},
}

// git init
var (
	InitQuiet         = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	InitBare          = Aliases{{Name: "bare"}}
	InitInitialBranch = Aliases{{Name: "initial-branch"}, {Name: "b", Short: true}}
	InitDirectory     = Aliases{{Name: "directory"}}
)

// Init is the schema for "git init"
var Init = &Command{
	Name: "init",
	Definitions: []Definition{
		{Aliases: InitQuiet, Kinds: []Kind{KindBool}},
		{Aliases: InitBare, Kinds: []Kind{KindBool}},
		{Aliases: InitInitialBranch, Kinds: []Kind{KindString}},
		{Aliases: InitDirectory, Kinds: []Kind{KindString}, Positional: true, Position: 0},
	},
}

// git log
var (
	LogMaxCount      = Aliases{{Name: "max-count"}, {Name: "n", Short: true}}
	LogSkip          = Aliases{{Name: "skip"}}
	LogBranches      = Aliases{{Name: "branches"}}
	LogAll           = Aliases{{Name: "all"}}
	LogFormat        = Aliases{{Name: "format"}}
	LogPretty        = Aliases{{Name: "pretty"}}
	LogDate          = Aliases{{Name: "date"}}
	LogRevisionRange = Aliases{{Name: "revision-range"}}
	LogPath          = Aliases{{Name: "path"}}
)

// Log is the schema for "git log". The branches alias appears twice: once as
// a bare toggle and once taking a pattern, disambiguated by the value kind.
var Log = &Command{
	Name: "log",
	Definitions: []Definition{
		{Aliases: LogMaxCount, Kinds: []Kind{KindInt}},
		{Aliases: LogSkip, Kinds: []Kind{KindInt}},
		{Aliases: LogBranches, Kinds: []Kind{KindBool, KindString}},
		{Aliases: LogAll, Kinds: []Kind{KindBool}},
		{Aliases: LogFormat, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: LogPretty, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: LogDate, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: LogRevisionRange, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: LogPath, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// git mv
var (
	MvForce       = Aliases{{Name: "force"}, {Name: "f", Short: true}}
	MvVerbose     = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	MvSource      = Aliases{{Name: "source"}}
	MvDestination = Aliases{{Name: "destination"}}
)

// Mv is the schema for "git mv"
var Mv = &Command{
	Name: "mv",
	Definitions: []Definition{
		{Aliases: MvForce, Kinds: []Kind{KindBool}},
		{Aliases: MvVerbose, Kinds: []Kind{KindBool}},
		{Aliases: MvSource, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: MvDestination, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// PullRecurseSubmodulesChoices are the accepted values for pull --recurse-submodules
var PullRecurseSubmodulesChoices = []string{"yes", "on-demand", "no"}

// git pull
var (
	PullQuiet             = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	PullVerbose           = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	PullRecurseSubmodules = Aliases{{Name: "recurse-submodules"}}
	PullCommit            = Aliases{{Name: "commit"}}
	PullFastForwardOnly   = Aliases{{Name: "ff-only"}}
	PullFastForward       = Aliases{{Name: "ff"}}
	PullAll               = Aliases{{Name: "all"}}
	PullForce             = Aliases{{Name: "force"}, {Name: "f", Short: true}}
	PullRepository        = Aliases{{Name: "repository"}}
	PullRefspec           = Aliases{{Name: "refspec"}}
)

// Pull is the schema for "git pull"
var Pull = &Command{
	Name: "pull",
	Definitions: []Definition{
		{Aliases: PullQuiet, Kinds: []Kind{KindBool}},
		{Aliases: PullVerbose, Kinds: []Kind{KindBool}},
		{Aliases: PullRecurseSubmodules, Kinds: []Kind{KindString}, Choices: PullRecurseSubmodulesChoices, Separator: "="},
		{Aliases: PullCommit, Kinds: []Kind{KindBool}},
		{Aliases: PullFastForwardOnly, Kinds: []Kind{KindBool}},
		{Aliases: PullFastForward, Kinds: []Kind{KindBool}},
		{Aliases: PullAll, Kinds: []Kind{KindBool}},
		{Aliases: PullForce, Kinds: []Kind{KindBool}},
		{Aliases: PullRepository, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: PullRefspec, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// PushRecurseSubmodulesChoices are the accepted values for push --recurse-submodules
var PushRecurseSubmodulesChoices = []string{"check", "on-demand", "only", "no"}

// git push
var (
	PushVerbose           = Aliases{{Name: "verbose"}, {Name: "v", Short: true}}
	PushRecurseSubmodules = Aliases{{Name: "recurse-submodules"}}
	PushAll               = Aliases{{Name: "all"}}
	PushBranches          = Aliases{{Name: "branches"}}
	PushPrune             = Aliases{{Name: "prune"}}
	PushDelete            = Aliases{{Name: "delete"}}
	PushTags              = Aliases{{Name: "tags"}}
	PushRepository        = Aliases{{Name: "repository"}}
	PushRefspec           = Aliases{{Name: "refspec"}}
)

// Push is the schema for "git push"
var Push = &Command{
	Name: "push",
	Definitions: []Definition{
		{Aliases: PushVerbose, Kinds: []Kind{KindBool}},
		{Aliases: PushRecurseSubmodules, Kinds: []Kind{KindString}, Choices: PushRecurseSubmodulesChoices, Separator: "="},
		{Aliases: PushAll, Kinds: []Kind{KindBool}},
		{Aliases: PushBranches, Kinds: []Kind{KindBool}},
		{Aliases: PushPrune, Kinds: []Kind{KindBool}},
		{Aliases: PushDelete, Kinds: []Kind{KindBool}},
		{Aliases: PushTags, Kinds: []Kind{KindBool}},
		{Aliases: PushRepository, Kinds: []Kind{KindString}, Positional: true, Position: 0},
		{Aliases: PushRefspec, Kinds: []Kind{KindString}, Positional: true, Position: 1},
	},
}

// git rm
var (
	RmQuiet     = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	RmForce     = Aliases{{Name: "force"}, {Name: "f", Short: true}}
	RmRecursive = Aliases{{Name: "r", Short: true}}
	RmCached    = Aliases{{Name: "cached"}}
	RmPathspec  = Aliases{{Name: "pathspec"}}
)

// Rm is the schema for "git rm"
var Rm = &Command{
	Name: "rm",
	Definitions: []Definition{
		{Aliases: RmQuiet, Kinds: []Kind{KindBool}},
		{Aliases: RmForce, Kinds: []Kind{KindBool}},
		{Aliases: RmRecursive, Kinds: []Kind{KindBool}},
		{Aliases: RmCached, Kinds: []Kind{KindBool}},
		{Aliases: RmPathspec, Kinds: []Kind{KindStringList}, Positional: true, Position: 0},
	},
}

// git show
var (
	ShowQuiet   = Aliases{{Name: "quiet"}, {Name: "q", Short: true}}
	ShowFormat  = Aliases{{Name: "format"}}
	ShowObjects = Aliases{{Name: "objects"}}
)

// Show is the schema for "git show"
var Show = &Command{
	Name: "show",
	Definitions: []Definition{
		{Aliases: ShowQuiet, Kinds: []Kind{KindBool}},
		{Aliases: ShowFormat, Kinds: []Kind{KindString}, Separator: "="},
		{Aliases: ShowObjects, Kinds: []Kind{KindStringList}, Positional: true, Position: 0},
	},
}
