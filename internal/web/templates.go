package web

// pageTemplates holds every page and shared fragment. Pages are "home" and
// "surah"; "surahCard" is the single grid item rendered for each surah,
// mirrored by renderSurahCard in script.js.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Amiri+Quran&family=Amiri:wght@400;700&display=swap">
  <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css">
  <link rel="stylesheet" href="/styles.css">
</head>
<body class="dark-theme">
  <header class="header">
    <div class="container">
      <div class="logo"><a href="/"><h1>القرآن</h1></a></div>
      <form class="search-bar" method="get" action="/" role="search">
        <input type="search" name="q" value="{{.Query}}" placeholder="ابحث عن سورة..." autocomplete="off" aria-label="ابحث عن سورة">
        <button type="submit" aria-label="بحث"><i class="fas fa-search"></i></button>
      </form>
    </div>
  </header>
{{end}}

{{define "foot"}}
  <script src="/script.js"></script>
</body>
</html>
{{end}}

{{define "surahCard"}}<a href="/surah/{{.Number}}" class="surah-item" data-number="{{.Number}}">
  <div class="surah-number-container"><span class="surah-number">{{.Number}}</span></div>
  <div class="surah-details">
    <span class="surah-title-arabic">{{.Name}}</span>
    <span class="surah-title-english">{{.EnglishName}}</span>
    <span class="ayah-count">{{.NumberOfAyahs}} Ayahs</span>
  </div>
</a>{{end}}

{{define "home"}}{{template "head" .}}
  <main class="main-content-grid">
    <div class="surah-grid" id="surah-grid">
      {{range .Surahs}}{{template "surahCard" .}}
      {{else}}<p class="empty">لا توجد نتائج</p>{{end}}
    </div>
  </main>
{{template "foot"}}{{end}}

{{define "surah"}}{{template "head" .}}
  <main class="main-content-single-surah" data-surah="{{.Surah.Number}}">
    <div class="surah-info">
      <div class="surah-title-arabic">
        <h1>{{.Surah.Name}}</h1>
        <p>{{.Surah.EnglishName}}</p>
      </div>
      <div class="surah-details">
        <span class="revelation-type">{{.Surah.RevelationType}}</span>
        <span class="ayah-count">{{.Surah.NumberOfAyahs}} Ayahs</span>
      </div>
    </div>

    <nav class="toolbar" aria-label="أدوات القراءة">
      <a href="{{.Translation.Href}}" id="translation-toggle" class="toolbar-button" data-active="{{.State.Translation}}" data-loaded="{{.TranslationLoaded}}"><i class="{{.Translation.Icon}}"></i> <span>{{.Translation.Label}}</span></a>
      <a href="{{.Audio.Href}}" id="audio-toggle" class="toolbar-button" data-active="{{.State.Audio}}" data-audio-url="{{.AudioURL}}"><i class="{{.Audio.Icon}}"></i> <span>{{.Audio.Label}}</span></a>
      <a href="{{.Font.Href}}" id="font-toggle" class="toolbar-button" data-font="{{.State.CurrentFont}}"><i class="{{.Font.Icon}}"></i> <span>{{.Font.Label}}</span></a>
    </nav>

    {{if .State.Audio}}<audio id="surah-audio" controls autoplay src="{{.AudioURL}}"></audio>{{end}}

    {{if .ShowBismillah}}<div class="bismillah">{{.Bismillah}}</div>{{end}}

    <div class="ayah-container">
      {{range .Ayahs}}<div class="ayah" id="ayah-{{.NumberInSurah}}">
        <div class="ayah-text">
          <span class="ayah-number">{{.NumberInSurah}}</span>
          <p class="verse-text {{$.FontClass}}">{{.Text}}</p>
        </div>
        <div class="ayah-translation"{{if not $.State.Translation}} hidden{{end}}>{{.Translation}}</div>
        {{if $.ExplainEnabled}}<button type="button" class="explain-button" data-ayah-number="{{.NumberInSurah}}"><i class="fas fa-lightbulb"></i> <span>تفسير</span></button>
        <div class="ayah-explanation" id="explanation-{{.NumberInSurah}}" hidden></div>{{end}}
      </div>
      {{end}}
    </div>
  </main>
{{template "foot"}}{{end}}
`
