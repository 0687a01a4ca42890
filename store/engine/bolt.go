package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nvkalinin/kalendar/log"
	"github.com/nvkalinin/kalendar/store"
	"go.etcd.io/bbolt"
)

const calBucket = "cal"

// Bolt хранят все данные в одном бакете (const calBucket).
// По ключу /<CC>/<y>/<m> хранится JSON, описывающий все дни месяца. CC - код страны (ISO 3166-1 alpha-2),
// год и месяц - числа, год всегда григорианский.
//
// Есть два паттерна использования данного сервиса: клиенты могут обращаться через REST API всякий раз, когда
// нужна информация о дне/неделе, либо запросить, например, год и закешировать у себя. Первое подходит, например,
// для вывода какого-нибудь UI календаря, последнее - для обработки большого количества данных.
// Поэтому каждый месяц хранится в отдельном ключе.
type Bolt struct {
	db *bbolt.DB
}

func NewBolt(file string) (*Bolt, error) {
	b, err := bbolt.Open(file, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("cannot open bolt store: %w", err)
	}
	log.Printf("[DEBUG] store/bolt opened %s successfully", file)

	return &Bolt{
		db: b,
	}, nil
}

func (b *Bolt) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("cannot close bolt store: %w", err)
	}
	log.Printf("[DEBUG] store/bolt closed successfully")
	return nil
}

func yearPrefix(c store.Country, y int) []byte {
	return []byte(fmt.Sprintf("/%s/%d/", c, y))
}

func monthKey(c store.Country, y int, mon time.Month) []byte {
	return []byte(fmt.Sprintf("/%s/%d/%d", c, y, mon))
}

func (b *Bolt) FindDay(c store.Country, y int, mon time.Month, d int) (*store.Day, bool) {
	days, ok := b.FindMonth(c, y, mon)
	if !ok {
		return nil, false
	}

	day, ok := days[d]
	if !ok {
		return nil, false
	}

	return &day, true
}

func (b *Bolt) FindMonth(c store.Country, y int, mon time.Month) (d store.Days, ok bool) {
	_ = b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(calBucket))
		if bucket == nil {
			return nil
		}

		key := monthKey(c, y, mon)
		daysJson := bucket.Get(key)
		log.Printf("[DEBUG] store/bolt get key=%s len=%d", key, len(daysJson))
		if daysJson == nil {
			return nil
		}

		if err := json.Unmarshal(daysJson, &d); err != nil {
			d = nil
			log.Printf("[WARN] bolt: invalid month calendar at %s: %v", key, err)
			return nil
		}

		ok = true
		return nil
	})
	return
}

func (b *Bolt) FindYear(c store.Country, y int) (m store.Months, ok bool) {
	_ = b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(calBucket))
		if bucket == nil {
			return nil
		}

		m = make(store.Months, 12)

		prefix := yearPrefix(c, y)
		log.Printf("[DEBUG] store/bolt getting cursor at %s", prefix)
		cur := bucket.Cursor()

		// Ключи в bolt отсортированы по возрастанию.
		// Поэтому можно перейти к первому ключу, который начинается с prefix, затем перебирать ключи,
		// пока не встретится другой префикс, либо не закончится бакет.
		for k, v := cur.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = cur.Next() {
			log.Printf("[DEBUG] store/bolt cursor is at key=%s len=%d", k, len(v))

			monNum, err := strconv.Atoi(string(bytes.TrimPrefix(k, prefix)))
			if err != nil || monNum < 1 || monNum > 12 {
				log.Printf("[WARN] bolt: invalid month key: %s", k)
				continue
			}

			var d store.Days
			if err := json.Unmarshal(v, &d); err != nil {
				log.Printf("[WARN] bolt: invalid month calendar at %s: %v", k, err)
				continue
			}

			m[time.Month(monNum)] = d
		}

		ok = len(m) > 0
		return nil
	})
	if !ok {
		m = nil
	}
	return
}

func (b *Bolt) PutYear(c store.Country, y int, data store.Months) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(calBucket))
		if err != nil {
			return fmt.Errorf("bolt cannot create bucket '%s': %v", calBucket, err)
		}

		for m, days := range data {
			key := monthKey(c, y, m)

			val, err := json.Marshal(days)
			if err != nil {
				return fmt.Errorf("bolt cannot marshal %s: %v", key, err)
			}

			log.Printf("[DEBUG] store/bolt put key=%s len=%d", key, len(val))
			if err := bucket.Put(key, val); err != nil {
				return fmt.Errorf("bolt cannot put %s: %v", key, err)
			}
		}
		return nil
	})
}

func (b *Bolt) Backup(w io.Writer) error {
	return b.db.View(func(tx *bbolt.Tx) error {
		log.Printf("[DEBUG] store/bolt writing backup len=%d", tx.Size())
		_, err := tx.WriteTo(w)
		return err
	})
}
