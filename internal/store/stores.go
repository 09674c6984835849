package store

type Stores struct {
	Users    *UserStore
	Records  *RecordStore
	LevelUps *LevelUpStore
	Shares   *ShareStore
}

func NewStores() *Stores {
	return &Stores{
		Users:    NewUserStore(),
		Records:  NewRecordStore(),
		LevelUps: NewLevelUpStore(),
		Shares:   NewShareStore(),
	}
}
