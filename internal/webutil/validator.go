package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"name":           "名前",
	"email":          "メールアドレス",
	"term":           "単語",
	"definition":     "意味",
	"phonetic":       "発音記号",
	"part_of_speech": "品詞",
	"example":        "例文",
	"is_correct":     "回答の正誤",
	"key":            "キー",
	"word_ids":       "単語ID",
}

// translatedField は jsonタグ名を日本語の項目名に変換します。マップになければそのまま返します。
func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	// エラーのフィールド名はJSONタグ名で返す
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}
	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// registerTranslation は {0}=項目名, {1}=パラメータ のメッセージを登録します
	registerTranslation := func(tag, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("email", "{0}は有効なメールアドレス形式ではありません。")
	registerTranslation("min", "{0}は{1}文字以上で入力してください。")
	registerTranslation("max", "{0}は{1}以下で入力してください。")
	registerTranslation("oneof", "{0}は[{1}]のいずれかを指定してください。")
	registerTranslation("unique", "{0}に重複があります。")
}
